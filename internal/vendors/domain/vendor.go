package domain

import "time"

// Vendor is a supplier that can receive RFPs. The email address is the
// correlation key for inbound replies, so it must be unique.
type Vendor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vendor) TableName() string {
	return "vendors"
}
