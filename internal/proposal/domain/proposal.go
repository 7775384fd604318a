package domain

import (
	"time"

	vendordomain "rfphub-backend/internal/vendors/domain"
)

// Proposal is a vendor's structured response to an RFP. The composite unique
// index enforces at most one proposal per (RFP, vendor) pair at the store
// level, so concurrent poll cycles cannot create duplicates.
type Proposal struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	RfpID          uint                `json:"rfpId" gorm:"not null;uniqueIndex:idx_proposal_rfp_vendor"`
	VendorID       uint                `json:"vendorId" gorm:"not null;uniqueIndex:idx_proposal_rfp_vendor"`
	Vendor         vendordomain.Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	EmailMessageID string              `json:"emailMessageId,omitempty"`
	RawEmail       string              `json:"rawEmail,omitempty" gorm:"type:text"`
	ParsedJSON     string              `json:"parsedJson,omitempty" gorm:"type:text"`
	TotalPrice     *float64            `json:"totalPrice,omitempty"`
	Currency       string              `json:"currency,omitempty"`
	DeliveryDays   *int                `json:"deliveryDays,omitempty"`
	AiSummary      string              `json:"aiSummary,omitempty"`
	Score          *float64            `json:"score,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func (Proposal) TableName() string {
	return "proposals"
}
