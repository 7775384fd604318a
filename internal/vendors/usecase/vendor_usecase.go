package usecase

import (
	"errors"

	"rfphub-backend/internal/vendors/domain"
	"rfphub-backend/internal/vendors/repository"
)

var ErrVendorNotFound = errors.New("vendor not found")

// VendorUsecase defines the interface for vendor business logic
type VendorUsecase interface {
	List() ([]*domain.Vendor, error)
	Create(name, email, phone string) (*domain.Vendor, error)
	Update(id uint, name, email, phone string) (*domain.Vendor, error)
	Delete(id uint) error
}

type vendorUsecase struct {
	vendorRepo repository.VendorRepository
}

func NewVendorUsecase(vendorRepo repository.VendorRepository) VendorUsecase {
	return &vendorUsecase{vendorRepo: vendorRepo}
}

func (u *vendorUsecase) List() ([]*domain.Vendor, error) {
	return u.vendorRepo.List()
}

func (u *vendorUsecase) Create(name, email, phone string) (*domain.Vendor, error) {
	vendor := &domain.Vendor{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := u.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (u *vendorUsecase) Update(id uint, name, email, phone string) (*domain.Vendor, error) {
	vendor, err := u.vendorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	if name != "" {
		vendor.Name = name
	}
	if email != "" {
		vendor.Email = email
	}
	if phone != "" {
		vendor.Phone = phone
	}

	if err := u.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (u *vendorUsecase) Delete(id uint) error {
	return u.vendorRepo.Delete(id)
}
