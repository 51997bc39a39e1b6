package dto

type CreateOfferRequest struct {
	TaskID  string  `json:"task_id" validate:"required"`
	UserID  string  `json:"user_id" validate:"required,max=64"`
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

type UpdateOfferRequest struct {
	Message *string `json:"message" validate:"required,max=2000"`
}
