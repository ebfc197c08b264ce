package security

import (
	"bearer-auth-api/internal/adapters/out/metrics"
	"bearer-auth-api/internal/app/ports"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// StrategyChain runs the strategies configured for one route group in order.
// A strategy failing without a message (missing or suppressed reason) lets
// the next one try; a failure with a message ends the chain.
type StrategyChain struct {
	route      string
	mode       ports.AuthMode
	strategies []ports.Strategy
	names      []string
	metrics    ports.ActionMetrics
}

// ChainResult is the decisive outcome of a chain run.
type ChainResult struct {
	Strategy   string
	Outcome    ports.Outcome
	Challenges []string
}

func NewStrategyChain(route string, mode ports.AuthMode, actionMetrics ports.ActionMetrics, strategies ...ports.Strategy) (*StrategyChain, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: route %s has no strategies", ports.ErrInvalidStrategyConfig, route)
	}
	names := make([]string, 0, len(strategies))
	seen := make(map[string]struct{}, len(strategies))
	for _, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("%w: route %s has a nil strategy", ports.ErrInvalidStrategyConfig, route)
		}
		if _, dup := seen[s.Name()]; dup {
			return nil, fmt.Errorf("%w: strategy %s listed twice for route %s", ports.ErrInvalidStrategyConfig, s.Name(), route)
		}
		seen[s.Name()] = struct{}{}
		names = append(names, s.Name())
	}
	if actionMetrics == nil {
		actionMetrics = &metrics.FakeActionMetrics{}
	}
	return &StrategyChain{
		route:      route,
		mode:       mode,
		strategies: strategies,
		names:      names,
		metrics:    actionMetrics,
	}, nil
}

func (c *StrategyChain) Strategies() []string {
	return append([]string(nil), c.names...)
}

// Authenticate returns the request carrying the route metadata, so downstream
// handlers and later strategies see the same view.
func (c *StrategyChain) Authenticate(w http.ResponseWriter, r *http.Request) (*http.Request, ChainResult, error) {
	r = r.WithContext(ports.WithRouteAuth(r.Context(), ports.RouteAuth{
		Route:      c.route,
		Mode:       c.mode,
		Strategies: c.Strategies(),
	}))
	logger := c.logger(r)

	var (
		challenges []string
		missing    error
	)
	for _, strategy := range c.strategies {
		aa := metrics.NewAuthAction(c.route, strategy.Name())
		outcome, err := strategy.Authenticate(w, r)
		c.metrics.OnActionDone(aa.DoneFromOutcome(outcome, err))
		if err != nil {
			logger.WithField("strategy", strategy.Name()).WithError(err).Error("strategy failed")
			return r, ChainResult{Strategy: strategy.Name()}, fmt.Errorf("strategy %s: %w", strategy.Name(), err)
		}

		entry := logger.WithFields(log.Fields{"strategy": strategy.Name(), "result": outcome.Kind.String()})
		switch outcome.Kind {
		case ports.OutcomeAuthenticated:
			entry.Debug("request authenticated")
			return r, ChainResult{Strategy: strategy.Name(), Outcome: outcome}, nil
		case ports.OutcomeFault:
			entry.WithError(outcome.Err).Error("strategy returned an implementation fault")
			return r, ChainResult{Strategy: strategy.Name(), Outcome: outcome}, nil
		}

		if ue, ok := outcome.Unauthorized(); ok {
			if ch := ue.Challenge(); ch != "" {
				challenges = append(challenges, ch)
			}
		}
		if outcome.Kind == ports.OutcomeRejected {
			entry.WithField("reason", messageOf(outcome)).Info("credentials rejected")
		} else {
			entry.Debug("no usable credentials")
		}
		if outcome.Kind == ports.OutcomeRejected && outcome.Message() != nil {
			return r, ChainResult{Strategy: strategy.Name(), Outcome: outcome, Challenges: challenges}, nil
		}
		if missing == nil {
			missing = outcome.Err
		}
	}

	return r, ChainResult{Outcome: ports.Challenged(missing), Challenges: challenges}, nil
}

func (c *StrategyChain) WithAuthChi(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, res, err := c.Authenticate(w, r)
		if err != nil {
			writeAuthJSON(w, http.StatusInternalServerError, "An internal server error occurred")
			return
		}

		switch res.Outcome.Kind {
		case ports.OutcomeAuthenticated:
			ctx := ports.WithPrincipal(r.Context(), &ports.Principal{
				Strategy:    res.Strategy,
				Credentials: res.Outcome.Credentials,
				Artifacts:   res.Outcome.Artifacts,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		case ports.OutcomeFault:
			writeAuthJSON(w, http.StatusInternalServerError, "An internal server error occurred")
			return
		}

		if c.mode == ports.AuthModeTry || (c.mode == ports.AuthModeOptional && res.Outcome.Kind == ports.OutcomeChallenge) {
			next.ServeHTTP(w, r)
			return
		}

		for _, ch := range res.Challenges {
			w.Header().Add("WWW-Authenticate", ch)
		}
		status := http.StatusUnauthorized
		if ue, ok := res.Outcome.Unauthorized(); ok && ue.Status != 0 {
			status = ue.Status
		}
		msg := "Missing authentication"
		if m := res.Outcome.Message(); m != nil {
			msg = *m
		}
		writeAuthJSON(w, status, msg)
	})
}

func (c *StrategyChain) logger(r *http.Request) *log.Entry {
	return log.WithFields(log.Fields{
		"route":      c.route,
		"request_id": middleware.GetReqID(r.Context()),
	})
}

func messageOf(o ports.Outcome) string {
	if m := o.Message(); m != nil {
		return *m
	}
	return ""
}

type authError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeAuthJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(authError{
		Code:    http.StatusText(status),
		Message: msg,
	})
}
