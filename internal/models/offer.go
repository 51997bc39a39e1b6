package model

import (
	"time"

	"task-marketplace.com/task-marketplace/internal/constants"
)

type Offer struct {
	ID        string                `gorm:"primaryKey;size:26" json:"id"`
	TaskID    string                `gorm:"size:36;not null;index" json:"task_id"`
	UserID    string                `gorm:"size:64;not null" json:"user_id"`
	Message   *string               `json:"message,omitempty"`
	Status    constants.OfferStatus `gorm:"type:varchar(20);not null" json:"status"`
	Version   uint                  `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}
