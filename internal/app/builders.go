package app

import (
	"bearer-auth-api/internal/adapters/in/rest"
	"bearer-auth-api/internal/adapters/out/security"
	"bearer-auth-api/internal/adapters/out/tokens"
	"bearer-auth-api/internal/app/api"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/docs"
	"bearer-auth-api/internal/app/ports"
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
)

const (
	routeAPI   = "api"
	routeAdmin = "admin"
)

// BuildApiServer builds a standalone API server over the configured token
// repository. The REST server uses BuildRestServer, which also shares the
// repository with the bearer validator.
func BuildApiServer(cfg *config.ProgramConfig, bootstrap bool) (ports.ApiServer, error) {
	hasher, err := security.NewDefaultHasherFromConfig(cfg.Security.Hasher)
	if err != nil {
		return nil, fmt.Errorf("cannot create hasher: %v", err)
	}
	tokenRepo, err := BuildTokenRepository(cfg, bootstrap)
	if err != nil {
		return nil, err
	}
	return newApiServer(cfg, bootstrap, hasher, tokenRepo)
}

func newApiServer(cfg *config.ProgramConfig, bootstrap bool, hasher ports.Hasher, tokenRepo ports.TokenRepository, opts ...api.Option) (*api.DefaultApiServer, error) {
	apiServer, err := api.NewDefaultApiServer(hasher, tokenRepo, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create api server: %v", err)
	}
	if bootstrap && cfg.TokenRepository.LoadInitialData {
		if err = loadInitialData(apiServer, cfg); err != nil {
			return nil, fmt.Errorf("cannot load initial data: %v", err)
		}
	}
	return apiServer, nil
}

func BuildRestServer(cfg *config.ProgramConfig, bootstrap bool, actionMetrics ports.ActionMetrics) (*rest.DefaultRestServer, error) {
	hasher, err := security.NewDefaultHasherFromConfig(cfg.Security.Hasher)
	if err != nil {
		return nil, fmt.Errorf("cannot create hasher: %v", err)
	}
	tokenRepo, err := BuildTokenRepository(cfg, bootstrap)
	if err != nil {
		return nil, err
	}
	validator, onTokenChanged, err := BuildValidator(cfg, hasher, tokenRepo)
	if err != nil {
		return nil, err
	}
	apiServer, err := newApiServer(cfg, bootstrap, hasher, tokenRepo, api.WithTokenChangeHook(onTokenChanged))
	if err != nil {
		return nil, err
	}

	strategies, err := BuildStrategies(cfg, validator)
	if err != nil {
		return nil, err
	}
	apiChain, err := BuildChain(routeAPI, cfg.Security.Chains.API, []string{security.BearerStrategyName}, strategies, actionMetrics)
	if err != nil {
		return nil, err
	}
	adminChain, err := BuildChain(routeAdmin, cfg.Security.Chains.Admin, []string{security.HMACStrategyName}, strategies, actionMetrics)
	if err != nil {
		return nil, err
	}

	restServer, err := rest.NewRestServer(cfg.HttpServer, apiServer, apiChain, adminChain)
	if err != nil {
		return nil, fmt.Errorf("cannot create rest server: %v", err)
	}
	return restServer, nil
}

func BuildTokenRepository(cfg *config.ProgramConfig, bootstrap bool) (tokenRepo ports.TokenRepository, err error) {
	repoCfg := cfg.TokenRepository
	switch repoCfg.Type {
	case "inmem":
		tokenRepo, err = tokens.NewInMemTokenRepository(repoCfg.InMem)
	case "sqlite":
		tokenRepo, err = tokens.NewSQLiteTokenRepository(repoCfg.Sqlite, bootstrap)
	case "mysql":
		tokenRepo, err = tokens.NewMySQLTokenRepository(repoCfg.MySQL, bootstrap)
	case "redis":
		tokenRepo, err = tokens.NewRedisTokenRepository(repoCfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported token repository type: %s", repoCfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot create token repository with type '%s': %v", repoCfg.Type, err)
	}
	info, err := tokenRepo.GetInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository ('%s') info: %v", repoCfg.Type, err)
	}
	log.WithField("type", repoCfg.Type).Infof("Token repository info: %s", info)
	return tokenRepo, nil
}

// BuildValidator returns the bearer validator together with the hook that
// must be told about every token record changed through the API.
func BuildValidator(cfg *config.ProgramConfig, hasher ports.Hasher, tokenRepo ports.TokenRepository) (ports.Validator, func(digest string), error) {
	bearerCfg := cfg.Security.Bearer
	switch bearerCfg.Validator {
	case "repository", "":
		v, err := security.NewRepositoryValidator(hasher, tokenRepo, bearerCfg.Cache)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot create repository validator: %v", err)
		}
		return v, v.Invalidate, nil
	case "jwt":
		v, err := security.NewJWTValidator(cfg.Security.JWT)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot create jwt validator: %v", err)
		}
		return v, func(string) {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported bearer validator: '%s'", bearerCfg.Validator)
	}
}

func BuildStrategies(cfg *config.ProgramConfig, validator ports.Validator) (map[string]ports.Strategy, error) {
	bearer, err := security.NewBearerScheme(security.BearerOptionsFromConfig(cfg.Security.Bearer, validator))
	if err != nil {
		return nil, fmt.Errorf("cannot create bearer strategy: %v", err)
	}
	hmacScheme, err := security.NewHMACScheme(cfg.Security.HMAC)
	if err != nil {
		return nil, fmt.Errorf("cannot create hmac strategy: %v", err)
	}
	return map[string]ports.Strategy{
		bearer.Name():     bearer,
		hmacScheme.Name(): hmacScheme,
	}, nil
}

// BuildChain resolves the configured strategy names of one route group.
func BuildChain(route string, cc config.ChainConfig, defaultStrategies []string, strategies map[string]ports.Strategy, actionMetrics ports.ActionMetrics) (*security.StrategyChain, error) {
	names := cc.Strategies
	if len(names) == 0 {
		names = defaultStrategies
	}
	mode, err := ports.ParseAuthMode(cc.Mode)
	if err != nil {
		return nil, fmt.Errorf("route %s: unsupported auth mode '%s': %w", route, cc.Mode, err)
	}
	chain := make([]ports.Strategy, 0, len(names))
	for _, name := range names {
		s, ok := strategies[name]
		if !ok {
			return nil, fmt.Errorf("route %s: unknown strategy '%s': %w", route, name, ports.ErrInvalidStrategyConfig)
		}
		chain = append(chain, s)
	}
	c, err := security.NewStrategyChain(route, mode, actionMetrics, chain...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"route": route, "mode": mode, "strategies": names}).Info("Auth chain configured")
	return c, nil
}

func loadInitialData(apiServer ports.ApiServer, cfg *config.ProgramConfig) error {
	log.Info("Loading initial data...")
	ctx := context.Background()
	icr, iex, ier := 0, 0, 0
	for token, t := range cfg.GetInitialTokens() {
		stored, created, err := apiServer.EnsureToken(ctx, token, t.TokenInfo, t.TokenIsDigest)
		entry := log.WithField("id", t.ID)
		switch {
		case err != nil:
			entry.WithError(err).Warn("Token can't be ensured")
			ier++
		case created:
			entry.WithField("principal", stored.Principal).Info("Token created")
			icr++
		default:
			entry.Info("Token already existed")
			iex++
		}
	}
	log.Infof("Tokens existed %d, loaded %d, errored: %d", iex, icr, ier)
	if ier > 0 {
		return fmt.Errorf("%d initial tokens could not be loaded", ier)
	}
	return nil
}

func BuildRouter(cfg config.HttpServerConfig, server *rest.DefaultRestServer) *chi.Mux {
	// Router CHI
	r := chi.NewRouter()

	// Standard middlewares: request correlation, real client IP, logging, recovery, and server-side request timeout
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(cfg.RequestTimeout),
	)
	if cfg.Cors.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Cors.AllowedOrigins,
			AllowedMethods:   cfg.Cors.AllowedMethods,
			AllowedHeaders:   cfg.Cors.AllowedHeaders,
			ExposedHeaders:   []string{"WWW-Authenticate"},
			AllowCredentials: cfg.Cors.AllowCredentials,
			MaxAge:           cfg.Cors.MaxAge,
		}))
	}

	_ = rest.Mount(server, r)

	// Health and readiness probes
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := server.Ready(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// OpenAPI YAML
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(docs.OpenAPIYAML)
	})
	return r
}
