package tokens

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenRepository keeps each record as a JSON document under
// <prefix>t:<digest> and reserves its id under <prefix>id:<id>.
type RedisTokenRepository struct {
	client       redis.UniversalClient
	prefix       string
	queryTimeout time.Duration
	ownsClient   bool
}

// Enforce compile-time conformance to the interface
var _ ports.TokenRepository = (*RedisTokenRepository)(nil)

func NewRedisTokenRepository(cfg config.TokenRepositoryRedisConfig) (*RedisTokenRepository, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("%w: redis address is required", ports.ErrInvalidInput)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	repo := NewRedisTokenRepositoryWithClient(client, cfg.KeyPrefix, cfg.QueryTimeout)
	repo.ownsClient = true
	if err := repo.HealthCheck(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unhealthy: %w", err)
	}
	return repo, nil
}

// NewRedisTokenRepositoryWithClient wraps an existing client; Close leaves it open.
func NewRedisTokenRepositoryWithClient(client redis.UniversalClient, prefix string, queryTimeout time.Duration) *RedisTokenRepository {
	if queryTimeout <= 0 {
		queryTimeout = 2 * time.Second
	}
	return &RedisTokenRepository{
		client:       client,
		prefix:       prefix,
		queryTimeout: queryTimeout,
	}
}

func (s *RedisTokenRepository) recordKey(digest string) string {
	return s.prefix + "t:" + normalizeDigest(digest)
}

func (s *RedisTokenRepository) idKey(id string) string {
	return s.prefix + "id:" + id
}

func (s *RedisTokenRepository) Close() error {
	if s.ownsClient {
		return s.client.Close()
	}
	return nil
}

func (s *RedisTokenRepository) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

func (s *RedisTokenRepository) GetInfo() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()
	info, err := s.client.Info(ctx, "server").Result()
	if err != nil {
		return "", err
	}
	ver := "unknown"
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "redis_version:"); ok {
			ver = v
			break
		}
	}
	return fmt.Sprintf("Connected to Redis version: '%s', key prefix: '%s'", ver, s.prefix), nil
}

func (s *RedisTokenRepository) ListTokens(ctx context.Context) ([]ports.TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		out    []ports.TokenInfo
		cursor uint64
	)
	pattern := s.prefix + "t:*"
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			t, err := s.get(ctx, key)
			if errors.Is(err, ports.ErrNotFound) {
				continue // deleted between SCAN and GET
			}
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *RedisTokenRepository) GetTokenByDigest(ctx context.Context, digest string) (ports.TokenInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	return s.get(ctx, s.recordKey(digest))
}

func (s *RedisTokenRepository) get(ctx context.Context, key string) (ports.TokenInfo, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.TokenInfo{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.TokenInfo{}, err
	}
	var t ports.TokenInfo
	if err := json.Unmarshal(raw, &t); err != nil {
		return ports.TokenInfo{}, fmt.Errorf("decode token record %s: %w", key, err)
	}
	t.Digest = strings.TrimPrefix(key, s.prefix+"t:")
	return t, nil
}

func (s *RedisTokenRepository) AddToken(ctx context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)
	raw, err := json.Marshal(token)
	if err != nil {
		return ports.TokenInfo{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	reserved, err := s.client.SetNX(ctx, s.idKey(token.ID), token.Digest, 0).Result()
	if err != nil {
		return ports.TokenInfo{}, err
	}
	if !reserved {
		return ports.TokenInfo{}, ports.ErrAlreadyExists
	}
	stored, err := s.client.SetNX(ctx, s.recordKey(token.Digest), raw, 0).Result()
	if err != nil || !stored {
		_ = s.client.Del(ctx, s.idKey(token.ID)).Err()
		if err != nil {
			return ports.TokenInfo{}, err
		}
		return ports.TokenInfo{}, ports.ErrAlreadyExists
	}
	return token, nil
}

func (s *RedisTokenRepository) UpdateToken(ctx context.Context, token ports.TokenInfo) (ports.TokenInfo, error) {
	if err := validateToken(token); err != nil {
		return ports.TokenInfo{}, err
	}
	token.Digest = normalizeDigest(token.Digest)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	existing, err := s.get(ctx, s.recordKey(token.Digest))
	if err != nil {
		return ports.TokenInfo{}, err
	}
	if existing.ID != token.ID {
		reserved, err := s.client.SetNX(ctx, s.idKey(token.ID), token.Digest, 0).Result()
		if err != nil {
			return ports.TokenInfo{}, err
		}
		if !reserved {
			return ports.TokenInfo{}, ports.ErrAlreadyExists
		}
		_ = s.client.Del(ctx, s.idKey(existing.ID)).Err()
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return ports.TokenInfo{}, err
	}
	if err := s.client.Set(ctx, s.recordKey(token.Digest), raw, 0).Err(); err != nil {
		return ports.TokenInfo{}, err
	}
	return token, nil
}

func (s *RedisTokenRepository) DeleteToken(ctx context.Context, digest string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	existing, err := s.get(ctx, s.recordKey(digest))
	if err != nil {
		return err
	}
	return s.client.Del(ctx, s.recordKey(digest), s.idKey(existing.ID)).Err()
}
