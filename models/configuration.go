package models

import (
	"time"
)

// Configuration holds per-session settings. SessionID is unique.
type Configuration struct {
	ID        uint                   `gorm:"primaryKey" json:"id"`
	SessionID string                 `gorm:"type:varchar(255);not null;uniqueIndex" json:"session_id"`
	Session   *PaymentSession        `gorm:"foreignKey:SessionID" json:"-"`
	Settings  map[string]interface{} `gorm:"type:text;serializer:json" json:"settings"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
