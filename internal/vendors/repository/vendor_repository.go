package repository

import (
	"rfphub-backend/internal/vendors/domain"

	"gorm.io/gorm"
)

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	// List returns all vendors ordered by name
	List() ([]*domain.Vendor, error)

	// FindByID returns a vendor by id, or nil if absent
	FindByID(id uint) (*domain.Vendor, error)

	// FindByIDs returns the vendors matching the given ids
	FindByIDs(ids []uint) ([]*domain.Vendor, error)

	// FindByEmail returns the vendor with the exact email address, or nil
	FindByEmail(email string) (*domain.Vendor, error)

	// Create persists a new vendor
	Create(vendor *domain.Vendor) error

	// Update saves changes to an existing vendor
	Update(vendor *domain.Vendor) error

	// Delete removes a vendor by id
	Delete(id uint) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) List() ([]*domain.Vendor, error) {
	var vendors []*domain.Vendor
	err := r.db.Order("name ASC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) FindByID(id uint) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.First(&vendor, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByIDs(ids []uint) ([]*domain.Vendor, error) {
	var vendors []*domain.Vendor
	err := r.db.Where("id IN ?", ids).Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) FindByEmail(email string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.Where("email = ?", email).First(&vendor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Create(vendor *domain.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *vendorRepository) Update(vendor *domain.Vendor) error {
	return r.db.Save(vendor).Error
}

func (r *vendorRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Vendor{}, id).Error
}
