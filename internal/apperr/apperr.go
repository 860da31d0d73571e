// Package apperr holds the typed errors raised by the domain layers. Handlers
// never build HTTP responses from raw errors; the httpserver error handler
// translates these into the JSON error envelope.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrEmailTaken         = New(http.StatusConflict, "email is already registered")
	ErrSKUTaken           = New(http.StatusConflict, "a product with this SKU already exists")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "invalid credentials")
	ErrProductNotFound    = New(http.StatusNotFound, "product not found")
)

type Error struct {
	Status   int
	Message  string
	Messages []string
	cause    error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// PublicMessage is what clients see; validation errors join their individual
// messages into one comma-separated string.
func (e *Error) PublicMessage() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(messages []string) *Error {
	return &Error{
		Status:   http.StatusBadRequest,
		Message:  "validation failed",
		Messages: messages,
	}
}

func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "internal server error", cause: cause}
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
