package models

import "time"

// UserDog is one decision ledger entry.
//
// Composite PK: (ExternalUserID, DogID), so there is at most one row per pair
// and a repeated decision overwrites the status.
type UserDog struct {
	ExternalUserID string    `gorm:"primaryKey;size:128" json:"-"`
	DogID          uint      `gorm:"primaryKey;index" json:"dog_id"`
	Status         Status    `gorm:"not null" json:"status"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
