package errors

var (
	ErrInvalidJSON = New(ErrBadRequest, "invalid JSON payload")
	ErrIDRequired  = New(ErrBadRequest, "id is required")
)
