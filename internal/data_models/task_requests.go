package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTaskRequest struct {
	Title              string          `json:"title" validate:"required,max=200"`
	Description        string          `json:"description" validate:"required"`
	Price              decimal.Decimal `json:"price"`
	IsPaid             bool            `json:"is_paid"`
	CreatedByUserID    string          `json:"created_by_user_id" validate:"required,max=64"`
	LocationID         *string         `json:"location_id" validate:"omitempty,min=1"`
	ExpectedFinishDate *time.Time      `json:"expected_finish_date"`
}

// UpdateTaskRequest is a PATCH body: absent or null fields are left untouched.
type UpdateTaskRequest struct {
	Title              *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description        *string          `json:"description" validate:"omitempty,min=1"`
	Price              *decimal.Decimal `json:"price"`
	IsPaid             *bool            `json:"is_paid"`
	ExpectedFinishDate *time.Time       `json:"expected_finish_date"`
	LocationID         *string          `json:"location_id" validate:"omitempty,min=1"`
}
