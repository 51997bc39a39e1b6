package model

import "time"

// Location is an address owned by a single user.
type Location struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:64;not null;index" json:"user_id"`
	Address    string    `gorm:"not null" json:"address"`
	City       string    `json:"city"`
	PostalCode string    `gorm:"size:16" json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
}
