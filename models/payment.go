package models

import (
	"time"
)

// PaymentSession is one payment attempt proposed by the checkout.
// PaymentMethod and Customer hold the serialized JSON text they were created with.
type PaymentSession struct {
	ID            string           `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Gid           string           `gorm:"type:varchar(255)" json:"gid"`
	Amount        float64          `gorm:"not null" json:"amount"`
	Currency      string           `gorm:"type:varchar(3)" json:"currency"`
	Test          bool             `json:"test"`
	Kind          string           `gorm:"type:varchar(50)" json:"kind"`
	CancelURL     string           `json:"cancel_url"`
	PaymentMethod string           `gorm:"type:text" json:"payment_method"`
	Customer      string           `gorm:"type:text" json:"customer"`
	Status        SessionStatus    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ProposedAt    time.Time        `gorm:"index" json:"proposed_at"`
	Refunds       []RefundSession  `gorm:"foreignKey:PaymentID" json:"refunds"`
	Captures      []CaptureSession `gorm:"foreignKey:PaymentID" json:"captures"`
	Void          *VoidSession     `gorm:"foreignKey:PaymentID" json:"void"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PaymentSessionInput carries the fields accepted when a payment session is created.
// Amount may be a number or a numeric string. PaymentMethod and Customer are
// serialized to JSON text before they are stored.
type PaymentSessionInput struct {
	ID            string        `json:"id"`
	Gid           string        `json:"gid"`
	Amount        interface{}   `json:"amount"`
	Currency      string        `json:"currency"`
	Test          bool          `json:"test"`
	Kind          string        `json:"kind"`
	CancelURL     string        `json:"cancel_url"`
	PaymentMethod interface{}   `json:"payment_method"`
	Customer      interface{}   `json:"customer"`
	Status        SessionStatus `json:"status"`
	ProposedAt    time.Time     `json:"proposed_at"`
}
