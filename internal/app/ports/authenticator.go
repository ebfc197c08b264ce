package ports

import (
	"context"
	"net/http"
)

// Strategy is one authentication scheme registered with the host pipeline.
// Authenticate consults the request exactly once and never writes to w on its own;
// the returned error is reserved for failures of collaborators (e.g. a validator
// that could not reach its store) and must be propagated by the host untouched.
type Strategy interface {
	Name() string
	Authenticate(w http.ResponseWriter, r *http.Request) (Outcome, error)
}

type AuthMode string

const (
	AuthModeRequired AuthMode = "required"
	AuthModeOptional AuthMode = "optional"
	AuthModeTry      AuthMode = "try"
)

func ParseAuthMode(s string) (AuthMode, error) {
	switch AuthMode(s) {
	case AuthModeRequired, "":
		return AuthModeRequired, nil
	case AuthModeOptional:
		return AuthModeOptional, nil
	case AuthModeTry:
		return AuthModeTry, nil
	default:
		return "", ErrInvalidInput
	}
}

// RouteAuth is the route metadata visible to strategies while a chain runs.
type RouteAuth struct {
	Route      string
	Mode       AuthMode
	Strategies []string
}

// Principal is what an authenticated request carries downstream.
type Principal struct {
	Strategy    string      `json:"strategy"`
	Credentials Credentials `json:"credentials"`
	Artifacts   any         `json:"artifacts,omitempty"`
}

type ctxKey string

const (
	ctxKeyRouteAuth ctxKey = "route-auth"
	ctxKeyPrincipal ctxKey = "principal"
)

func WithRouteAuth(ctx context.Context, ra RouteAuth) context.Context {
	return context.WithValue(ctx, ctxKeyRouteAuth, ra)
}

func RouteAuthFromContext(ctx context.Context) (RouteAuth, bool) {
	ra, ok := ctx.Value(ctxKeyRouteAuth).(RouteAuth)
	return ra, ok
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns nil when the request went through a chain in
// optional/try mode without authenticating.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(ctxKeyPrincipal).(*Principal)
	return p
}
