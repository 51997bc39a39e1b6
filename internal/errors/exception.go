package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error that knows which HTTP status it maps to.
// An Exception created with New or Wrap belongs to a kind, so errors.Is(err, ErrNotFound)
// holds for every not-found flavour.
type Exception struct {
	Message    string
	StatusCode int

	kind  *Exception
	cause error
}

func (e *Exception) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.cause
}

func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok {
		return false
	}
	for k := e; k != nil; k = k.kind {
		if k == t {
			return true
		}
	}
	return false
}

// Kind returns the root exception e descends from.
func (e *Exception) Kind() *Exception {
	k := e
	for k.kind != nil {
		k = k.kind
	}
	return k
}

func New(kind *Exception, message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: kind.StatusCode,
		kind:       kind,
	}
}

func Wrap(kind *Exception, message string, cause error) *Exception {
	e := New(kind, message)
	e.cause = cause
	return e
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage is the message safe to hand to a client. Causes are never included.
func PublicMessage(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
