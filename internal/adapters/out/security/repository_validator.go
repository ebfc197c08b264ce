package security

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"
)

// RepositoryValidator validates opaque tokens by looking their digest up in a
// TokenRepository. Lookups, including misses, are cached for a short time.
type RepositoryValidator struct {
	hasher ports.Hasher
	repo   ports.TokenRepository
	cache  *expirable.LRU[string, cachedToken]
	now    func() time.Time
}

type cachedToken struct {
	info  ports.TokenInfo
	found bool
}

// Enforce compile-time conformance to the interface
var _ ports.Validator = (*RepositoryValidator)(nil)

func NewRepositoryValidator(hasher ports.Hasher, repo ports.TokenRepository, cfg config.ValidatorCache) (*RepositoryValidator, error) {
	if hasher == nil || repo == nil {
		return nil, fmt.Errorf("%w: repository validator needs a hasher and a token repository", ports.ErrInvalidStrategyConfig)
	}
	v := &RepositoryValidator{
		hasher: hasher,
		repo:   repo,
		now:    time.Now,
	}
	if cfg.Size > 0 && cfg.TTL > 0 {
		v.cache = expirable.NewLRU[string, cachedToken](cfg.Size, nil, cfg.TTL)
	}
	return v, nil
}

func (v *RepositoryValidator) Validate(ctx context.Context, _ http.ResponseWriter, _ *http.Request, token string, entityID *string) (ports.ValidationResult, error) {
	digest, err := v.hasher.DefaultDigest(token)
	if err != nil {
		return ports.ValidationResult{}, fmt.Errorf("digest token: %w", err)
	}

	entry, err := v.lookup(ctx, digest)
	if err != nil {
		return ports.ValidationResult{}, err
	}
	if !entry.found {
		return ports.ValidationResult{}, nil
	}

	info := entry.info
	logger := log.WithField("token_id", info.ID)
	if info.Disabled {
		logger.Info("disabled token presented")
		return ports.ValidationResult{IsBlocked: true, Credentials: info.Credentials()}, nil
	}
	if info.IsExpired(v.now()) {
		logger.Debug("expired token presented")
		return ports.ValidationResult{}, nil
	}

	creds := info.Credentials()
	if entityID != nil {
		if !info.CanActFor(*entityID) {
			logger.WithField("entity_id", *entityID).Debug("token not valid for entity")
			return ports.ValidationResult{}, nil
		}
		creds["entity_id"] = *entityID
	}
	return ports.ValidationResult{
		IsValid:     true,
		Credentials: creds,
		Artifacts: map[string]any{
			"attempt_id": uuid.NewString(),
			"token_id":   info.ID,
		},
	}, nil
}

// Invalidate drops a cached lookup, e.g. after the record was changed.
func (v *RepositoryValidator) Invalidate(digest string) {
	if v.cache != nil {
		v.cache.Remove(digest)
	}
}

func (v *RepositoryValidator) lookup(ctx context.Context, digest string) (cachedToken, error) {
	if v.cache != nil {
		if hit, ok := v.cache.Get(digest); ok {
			return hit, nil
		}
	}
	info, err := v.repo.GetTokenByDigest(ctx, digest)
	var entry cachedToken
	switch {
	case errors.Is(err, ports.ErrNotFound):
		entry = cachedToken{found: false}
	case err != nil:
		return cachedToken{}, fmt.Errorf("token lookup: %w", err)
	default:
		entry = cachedToken{info: info, found: true}
	}
	if v.cache != nil {
		v.cache.Add(digest, entry)
	}
	return entry, nil
}
