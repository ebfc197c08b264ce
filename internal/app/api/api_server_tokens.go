package api

import (
	"bearer-auth-api/internal/app/ports"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func (s *DefaultApiServer) DescribeToken(ctx context.Context, plaintext string) (ports.TokenInfo, error) {
	digest, err := s.hasher.DefaultDigest(plaintext)
	if err != nil {
		return ports.TokenInfo{}, err
	}
	return s.tokenRepo.GetTokenByDigest(ctx, digest)
}

func (s *DefaultApiServer) ListTokens(ctx context.Context) ([]ports.TokenInfo, error) {
	return s.tokenRepo.ListTokens(ctx)
}

func (s *DefaultApiServer) IssueToken(ctx context.Context, info ports.TokenInfo) (string, ports.TokenInfo, error) {
	_, secret, err := s.GenerateSecret(nil)
	if err != nil {
		return "", ports.TokenInfo{}, err
	}
	plaintext := base64.RawURLEncoding.EncodeToString(secret)
	stored, created, err := s.EnsureToken(ctx, plaintext, info, false)
	if err != nil {
		return "", ports.TokenInfo{}, err
	}
	if !created {
		// 256 random bits colliding with a stored digest is not expected
		return "", ports.TokenInfo{}, fmt.Errorf("issued token collides with an existing record: %w", ports.ErrAlreadyExists)
	}
	return plaintext, stored, nil
}

func (s *DefaultApiServer) EnsureToken(ctx context.Context, token string, info ports.TokenInfo, tokenIsDigest bool) (ports.TokenInfo, bool, error) {
	if strings.TrimSpace(token) == "" {
		return ports.TokenInfo{}, false, fmt.Errorf("%w: token is required", ports.ErrInvalidInput)
	}
	digest := token
	if !tokenIsDigest {
		var err error
		if digest, err = s.hasher.DefaultDigest(token); err != nil {
			return ports.TokenInfo{}, false, err
		}
	}

	existing, err := s.tokenRepo.GetTokenByDigest(ctx, digest)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, ports.ErrNotFound):
		return ports.TokenInfo{}, false, err
	}

	info.Digest = digest
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	if info.Principal == "" {
		info.Principal = info.ID
	}
	stored, err := s.tokenRepo.AddToken(ctx, info)
	if err != nil {
		return ports.TokenInfo{}, false, err
	}
	s.onTokenChanged(stored.Digest)
	return stored, true, nil
}

func (s *DefaultApiServer) RevokeToken(ctx context.Context, digest string) error {
	if err := s.tokenRepo.DeleteToken(ctx, digest); err != nil {
		return err
	}
	s.onTokenChanged(strings.ToLower(strings.TrimSpace(digest)))
	return nil
}

func (s *DefaultApiServer) SetTokenDisabled(ctx context.Context, digest string, disabled bool) (ports.TokenInfo, error) {
	digest = strings.ToLower(strings.TrimSpace(digest))
	info, err := s.tokenRepo.GetTokenByDigest(ctx, digest)
	if err != nil {
		return ports.TokenInfo{}, err
	}
	if info.Disabled == disabled {
		return info, nil
	}
	info.Disabled = disabled
	stored, err := s.tokenRepo.UpdateToken(ctx, info)
	if err != nil {
		return ports.TokenInfo{}, err
	}
	s.onTokenChanged(stored.Digest)
	return stored, nil
}
