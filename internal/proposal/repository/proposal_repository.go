package repository

import (
	"rfphub-backend/internal/proposal/domain"

	"gorm.io/gorm"
)

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	// FindByRfpAndVendor returns the proposal for the pair, or nil if absent
	FindByRfpAndVendor(rfpID, vendorID uint) (*domain.Proposal, error)

	// Create persists a new proposal. A second proposal for the same
	// (rfpID, vendorID) pair fails with gorm.ErrDuplicatedKey.
	Create(proposal *domain.Proposal) error

	// ListByRfp returns all proposals for an RFP with their vendors
	ListByRfp(rfpID uint) ([]*domain.Proposal, error)

	// DeleteByRfp removes every proposal belonging to an RFP
	DeleteByRfp(rfpID uint) error
}

type proposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) FindByRfpAndVendor(rfpID, vendorID uint) (*domain.Proposal, error) {
	var proposal domain.Proposal
	err := r.db.Where("rfp_id = ? AND vendor_id = ?", rfpID, vendorID).First(&proposal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) Create(proposal *domain.Proposal) error {
	return r.db.Create(proposal).Error
}

func (r *proposalRepository) ListByRfp(rfpID uint) ([]*domain.Proposal, error) {
	var proposals []*domain.Proposal
	err := r.db.Preload("Vendor").Where("rfp_id = ?", rfpID).Order("created_at ASC").Find(&proposals).Error
	return proposals, err
}

func (r *proposalRepository) DeleteByRfp(rfpID uint) error {
	return r.db.Where("rfp_id = ?", rfpID).Delete(&domain.Proposal{}).Error
}
