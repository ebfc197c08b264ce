package tokens

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
)

type InMemTokenRepository struct {
	cfg    config.TokenRepositoryInMemConfig
	tokens map[string]*ports.TokenInfo
	mu     sync.RWMutex
}

// Enforce compile-time conformance to the interface
var _ ports.TokenRepository = (*InMemTokenRepository)(nil)

func NewInMemTokenRepository(cfg config.TokenRepositoryInMemConfig) (*InMemTokenRepository, error) {
	return &InMemTokenRepository{
		cfg:    cfg,
		tokens: make(map[string]*ports.TokenInfo),
	}, nil
}

func (s *InMemTokenRepository) HealthCheck() error {
	return nil
}

func (s *InMemTokenRepository) GetInfo() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("in-memory, %d tokens", len(s.tokens)), nil
}

func (s *InMemTokenRepository) ListTokens(_ context.Context) ([]ports.TokenInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ports.TokenInfo, 0, len(s.tokens))
	for _, t := range s.tokens {
		out = append(out, cloneToken(*t)) // return values to callers to avoid external mutation
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemTokenRepository) GetTokenByDigest(_ context.Context, digest string) (ports.TokenInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[normalizeDigest(digest)]
	if !ok {
		return ports.TokenInfo{}, ports.ErrNotFound
	}
	return cloneToken(*t), nil
}

func (s *InMemTokenRepository) AddToken(_ context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.EntitiesLimit > 0 && len(s.tokens) >= s.cfg.EntitiesLimit {
		return ports.TokenInfo{}, fmt.Errorf("tokens limit reached")
	}
	if _, exists := s.tokens[token.Digest]; exists {
		return ports.TokenInfo{}, ports.ErrAlreadyExists
	}
	for _, t := range s.tokens {
		if t.ID == token.ID {
			return ports.TokenInfo{}, ports.ErrAlreadyExists
		}
	}
	t := cloneToken(token)
	s.tokens[token.Digest] = &t
	return cloneToken(t), nil
}

func (s *InMemTokenRepository) UpdateToken(_ context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tokens[token.Digest]
	if !ok {
		return ports.TokenInfo{}, ports.ErrNotFound
	}
	*existing = cloneToken(token)
	return cloneToken(*existing), nil
}

func (s *InMemTokenRepository) DeleteToken(_ context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	digest = normalizeDigest(digest)
	if _, exists := s.tokens[digest]; !exists {
		return ports.ErrNotFound
	}
	delete(s.tokens, digest)
	return nil
}

func cloneToken(t ports.TokenInfo) ports.TokenInfo {
	t.Scopes = slices.Clone(t.Scopes)
	t.Entities = slices.Clone(t.Entities)
	return t
}
