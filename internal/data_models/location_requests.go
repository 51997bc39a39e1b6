package dto

type CreateLocationRequest struct {
	UserID     string `json:"user_id" validate:"required,max=64"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code" validate:"max=16"`
}
