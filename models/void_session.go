package models

import "time"

// VoidSession cancels an authorization. A payment session has at most one.
type VoidSession struct {
	ID         string          `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Gid        string          `gorm:"type:varchar(255)" json:"gid"`
	PaymentID  string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"payment_id"`
	Payment    *PaymentSession `gorm:"foreignKey:PaymentID" json:"-"`
	Status     SessionStatus   `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ProposedAt time.Time       `json:"proposed_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
