package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the message shown to the client.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewHTTPError creates an HTTPError. code is used as the HTTP status when it is a valid status.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status for the error.
func (e *HTTPError) StatusCode() int {
	if e.Code >= 100 && e.Code <= 599 {
		return e.Code
	}
	return http.StatusBadRequest
}
