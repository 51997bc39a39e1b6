package errors

import "net/http"

var ErrNotFound = &Exception{
	Message:    "resource not found",
	StatusCode: http.StatusNotFound,
}

var ErrInvalidState = &Exception{
	Message:    "operation not allowed in current state",
	StatusCode: http.StatusConflict,
}

var ErrNotAuthorized = &Exception{
	Message:    "not authorized",
	StatusCode: http.StatusForbidden,
}

var ErrStorageUnavailable = &Exception{
	Message:    "storage unavailable",
	StatusCode: http.StatusServiceUnavailable,
}

var ErrBadRequest = &Exception{
	Message:    "bad request",
	StatusCode: http.StatusBadRequest,
}
