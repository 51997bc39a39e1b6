package model

import (
	"time"

	"github.com/shopspring/decimal"

	"task-marketplace.com/task-marketplace/internal/constants"
)

type Task struct {
	ID                 string               `gorm:"primaryKey;size:36" json:"id"`
	Title              string               `gorm:"not null" json:"title"`
	Description        string               `gorm:"not null" json:"description"`
	Price              decimal.Decimal      `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	IsPaid             bool                 `gorm:"not null;default:false" json:"is_paid"`
	CreatedByUserID    string               `gorm:"size:64;not null;index" json:"created_by_user_id"`
	AssignedUserID     *string              `gorm:"size:64;index" json:"assigned_user_id"`
	LocationID         *string              `gorm:"size:36" json:"location_id"`
	Status             constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Version            uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	ExpectedFinishDate *time.Time           `json:"expected_finish_date"`
	StartedAt          *time.Time           `json:"started_at,omitempty"`
	CompletedAt        *time.Time           `json:"completed_at,omitempty"`
}
