package ports

import (
	"context"
	"net/http"
)

// ValidationResult is what a token validator reports back.
// Credentials must be non-nil whenever IsValid is true.
type ValidationResult struct {
	IsValid     bool
	Credentials Credentials
	Artifacts   any
	IsBlocked   bool
}

// Validator checks a token extracted by a strategy. entityID is nil unless the
// strategy runs in entity-scoped mode.
type Validator interface {
	Validate(ctx context.Context, w http.ResponseWriter, r *http.Request, token string, entityID *string) (ValidationResult, error)
}

type ValidatorFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, token string, entityID *string) (ValidationResult, error)

func (f ValidatorFunc) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request, token string, entityID *string) (ValidationResult, error) {
	return f(ctx, w, r, token, entityID)
}
