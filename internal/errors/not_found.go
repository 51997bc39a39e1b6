package errors

var (
	ErrTaskNotFound     = New(ErrNotFound, "task not found")
	ErrOfferNotFound    = New(ErrNotFound, "offer not found")
	ErrLocationNotFound = New(ErrNotFound, "location not found")
)
