package repository

import (
	"rfphub-backend/internal/rfp/domain"

	"gorm.io/gorm"
)

// RfpRepository defines the interface for RFP data access
type RfpRepository interface {
	// Create persists an RFP together with its line items
	Create(rfp *domain.Rfp) error

	// FindByID returns the RFP with its line items, or nil if absent
	FindByID(id uint) (*domain.Rfp, error)

	// List returns all RFPs, newest first
	List() ([]*domain.Rfp, error)

	// UpdateStatus changes the lifecycle status of an RFP
	UpdateStatus(id uint, status domain.RfpStatus) error

	// Delete removes the RFP and its line items
	Delete(id uint) error
}

type rfpRepository struct {
	db *gorm.DB
}

func NewRfpRepository(db *gorm.DB) RfpRepository {
	return &rfpRepository{db: db}
}

func (r *rfpRepository) Create(rfp *domain.Rfp) error {
	return r.db.Create(rfp).Error
}

func (r *rfpRepository) FindByID(id uint) (*domain.Rfp, error) {
	var rfp domain.Rfp
	err := r.db.Preload("LineItems").First(&rfp, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rfp, nil
}

func (r *rfpRepository) List() ([]*domain.Rfp, error) {
	var rfps []*domain.Rfp
	err := r.db.Order("created_at DESC").Find(&rfps).Error
	return rfps, err
}

func (r *rfpRepository) UpdateStatus(id uint, status domain.RfpStatus) error {
	return r.db.Model(&domain.Rfp{}).Where("id = ?", id).Update("status", status).Error
}

func (r *rfpRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rfp_id = ?", id).Delete(&domain.RfpLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Rfp{}, id).Error
	})
}
