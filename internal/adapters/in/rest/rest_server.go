package rest

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi" // generated
	"bearer-auth-api/internal/adapters/out/security"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type DefaultRestServer struct {
	apis       ports.ApiServer
	restCfg    config.HttpServerConfig
	apiChain   *security.StrategyChain
	adminChain *security.StrategyChain
	startTime  time.Time
}

// Enforce compile-time conformance to a generated interface
var _ openapi.ServerInterface = (*DefaultRestServer)(nil)

func NewRestServer(cfg config.HttpServerConfig, apiServer ports.ApiServer, apiChain, adminChain *security.StrategyChain) (*DefaultRestServer, error) {
	if apiServer == nil {
		return nil, errors.New("apiServer is nil")
	}
	if apiChain == nil || adminChain == nil {
		return nil, errors.New("both the api and the admin auth chains are required")
	}
	return &DefaultRestServer{
		restCfg:    cfg,
		apis:       apiServer,
		apiChain:   apiChain,
		adminChain: adminChain,
		startTime:  time.Now().UTC(),
	}, nil
}

// Mount registers the generated routes on r with authentication and JSON
// parameter errors.
func Mount(s *DefaultRestServer, r chi.Router) http.Handler {
	return openapi.HandlerWithOptions(s, openapi.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []openapi.MiddlewareFunc{s.Authenticate},
		ErrorHandlerFunc: writeParamError,
	})
}

func (s *DefaultRestServer) Ready() error {
	return s.apis.HealthCheck()
}

func (s *DefaultRestServer) Health(w http.ResponseWriter, _ *http.Request) {
	body := openapi.HealthStatusResponseBody{
		Banner:    s.restCfg.Banner,
		StartedAt: s.startTime,
		Healthy:   true,
		UptimeSec: int64(time.Since(s.startTime).Seconds()),
	}
	if err := s.apis.HealthCheck(); err != nil {
		body.Healthy = false
		body.Reason = ptr(err.Error())
		writeJSON(w, http.StatusServiceUnavailable, body)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// Authentication: rest_server_auth.go
// "Crypto" endpoints: rest_server_crypto.go
// "Tokens" endpoints: rest_server_tokens.go
// "WhoAmI" endpoint: rest_server_whoami.go

// helpers:

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	// accept "application/json" with optional charset
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), "application/json")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, openapi.Error{
		Code:    http.StatusText(status),
		Message: msg,
	})
}

func writeParamError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeApiError maps API errors to HTTP statuses.
func writeApiError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ports.ErrInvalidInput), errors.Is(err, ports.ErrUnsupportedAlgorithm):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if !isJSON(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return false
	}
	return true
}

func ptr[T any](v T) *T { return &v }
