package api

import "net/http"

// Error is an HTTP-mappable error returned by handlers
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NewInternalError(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// StatusOf returns the HTTP status for err, defaulting to 500
func StatusOf(err error) int {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
