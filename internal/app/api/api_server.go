package api

import (
	"bearer-auth-api/internal/app/ports"
	"errors"
)

// Enforce compile-time conformance to the interface
var _ ports.ApiServer = (*DefaultApiServer)(nil)

type DefaultApiServer struct {
	hasher    ports.Hasher
	tokenRepo ports.TokenRepository
	// onTokenChanged is told the digest of every record changed through the API.
	onTokenChanged func(digest string)
}

type Option func(*DefaultApiServer)

// WithTokenChangeHook registers a callback (e.g. a validator cache invalidation).
func WithTokenChangeHook(hook func(digest string)) Option {
	return func(s *DefaultApiServer) {
		s.onTokenChanged = hook
	}
}

func NewDefaultApiServer(hasher ports.Hasher, tokenRepo ports.TokenRepository, opts ...Option) (*DefaultApiServer, error) {
	if hasher == nil {
		return nil, errors.New("hasher is nil")
	}
	if tokenRepo == nil {
		return nil, errors.New("tokenRepo is nil")
	}
	s := &DefaultApiServer{
		hasher:         hasher,
		tokenRepo:      tokenRepo,
		onTokenChanged: func(string) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *DefaultApiServer) HealthCheck() error {
	return s.tokenRepo.HealthCheck()
}
