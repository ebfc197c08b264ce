package rest

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi" // generated
	"net/http"
)

// Authenticate runs an operation through the chain its security requirement
// selects. Operations accepting bearer tokens use the api chain, HMAC-only
// operations the admin chain; operations without requirements are public.
func (s *DefaultRestServer) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		switch {
		case ctx.Value(openapi.BearerAuthScopes) != nil:
			s.apiChain.WithAuthChi(next).ServeHTTP(w, r)
		case ctx.Value(openapi.HmacAuthScopes) != nil:
			s.adminChain.WithAuthChi(next).ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
