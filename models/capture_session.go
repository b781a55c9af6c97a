package models

import "time"

// CaptureSession records a capture of previously authorized funds.
type CaptureSession struct {
	ID         string          `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Gid        string          `gorm:"type:varchar(255)" json:"gid"`
	PaymentID  string          `gorm:"type:varchar(255);not null;index" json:"payment_id"`
	Payment    *PaymentSession `gorm:"foreignKey:PaymentID" json:"-"`
	Amount     float64         `gorm:"not null" json:"amount"`
	Currency   string          `gorm:"type:varchar(3)" json:"currency"`
	Status     SessionStatus   `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ProposedAt time.Time       `json:"proposed_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CaptureSessionInput struct {
	ID         string        `json:"id"`
	Gid        string        `json:"gid"`
	PaymentID  string        `json:"payment_id"`
	Amount     interface{}   `json:"amount"`
	Currency   string        `json:"currency"`
	Status     SessionStatus `json:"status"`
	ProposedAt time.Time     `json:"proposed_at"`
}
