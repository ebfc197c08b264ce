package rest

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi" // generated
	"bearer-auth-api/internal/app/ports"
	"net/http"
)

// WhoAmI echoes what the api chain attached to the request. In optional and
// try modes the request may reach it unauthenticated.
func (s *DefaultRestServer) WhoAmI(w http.ResponseWriter, r *http.Request) {
	body := openapi.WhoAmIResponseBody{}
	if ra, ok := ports.RouteAuthFromContext(r.Context()); ok {
		body.Route = ra.Route
	}
	if p := ports.PrincipalFromContext(r.Context()); p != nil {
		body.Authenticated = true
		body.Strategy = ptr(p.Strategy)
		if p.Credentials != nil {
			body.Credentials = ptr(map[string]interface{}(p.Credentials))
		}
		body.Artifacts = artifactsOf(p.Artifacts)
	}
	writeJSON(w, http.StatusOK, body)
}

// artifactsOf shapes strategy artifacts as a JSON object; other values are
// reported under "value".
func artifactsOf(artifacts any) *map[string]interface{} {
	switch a := artifacts.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return &a
	default:
		return &map[string]interface{}{"value": a}
	}
}
