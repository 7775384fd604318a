package domain

import "time"

// RfpStatus tracks whether an RFP has been emailed to vendors yet.
type RfpStatus string

const (
	StatusDraft RfpStatus = "draft"
	StatusSent  RfpStatus = "sent"
)

// Rfp is a structured procurement request. The description doubles as the
// context handed to AI extraction when vendor replies come in.
type Rfp struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	Title          string        `json:"title" gorm:"not null"`
	Description    string        `json:"description" gorm:"type:text;not null"`
	Budget         *float64      `json:"budget,omitempty"`
	Currency       string        `json:"currency,omitempty"`
	DeliveryWindow string        `json:"deliveryWindow,omitempty"`
	PaymentTerms   string        `json:"paymentTerms,omitempty"`
	Warranty       string        `json:"warranty,omitempty"`
	RawPrompt      string        `json:"rawPrompt,omitempty" gorm:"type:text"`
	Status         RfpStatus     `json:"status" gorm:"default:draft"`
	LineItems      []RfpLineItem `json:"lineItems,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (Rfp) TableName() string {
	return "rfps"
}

type RfpLineItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	RfpID       uint   `json:"rfpId" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity" gorm:"default:1"`
	Specs       string `json:"specs,omitempty"`
}

func (RfpLineItem) TableName() string {
	return "rfp_line_items"
}
