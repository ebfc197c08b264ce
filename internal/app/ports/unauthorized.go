package ports

import (
	"net/http"
	"strings"
)

// UnauthorizedFunc maps an optional reason and the expected token type to the
// structured error a strategy hands back to the host.
type UnauthorizedFunc func(message *string, tokenType string) error

// UnauthorizedError is the default structured 401.
type UnauthorizedError struct {
	Status  int
	Scheme  string
	Message *string
}

var _ UnauthorizedFunc = NewUnauthorized

func NewUnauthorized(message *string, scheme string) error {
	return &UnauthorizedError{
		Status:  http.StatusUnauthorized,
		Scheme:  scheme,
		Message: message,
	}
}

func (e *UnauthorizedError) Error() string {
	if e.Message != nil && *e.Message != "" {
		return *e.Message
	}
	return "unauthorized"
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// Challenge renders the WWW-Authenticate value, e.g. `Bearer error="Bad token"`.
func (e *UnauthorizedError) Challenge() string {
	if e.Scheme == "" {
		return ""
	}
	if e.Message == nil || *e.Message == "" {
		return e.Scheme
	}
	msg := strings.ReplaceAll(*e.Message, `"`, `\"`)
	return e.Scheme + ` error="` + msg + `"`
}
