package ports

import (
	"context"
	"slices"
	"time"
)

// TokenRepository is the store behind the repository validator. Tokens are
// never kept in clear text: records are addressed by the digest of the token.
type TokenRepository interface {
	HealthCheck() error
	GetInfo() (string, error)

	ListTokens(ctx context.Context) ([]TokenInfo, error)
	GetTokenByDigest(ctx context.Context, digest string) (TokenInfo, error)
	AddToken(ctx context.Context, token TokenInfo) (TokenInfo, error)
	UpdateToken(ctx context.Context, token TokenInfo) (TokenInfo, error)
	DeleteToken(ctx context.Context, digest string) error
}

type TokenInfo struct {
	ID          string     `yaml:"id" json:"id"`
	Digest      string     `yaml:"digest" json:"-"`
	Principal   string     `yaml:"principal" json:"principal"`
	Description *string    `yaml:"description" json:"description,omitempty"`
	Scopes      []string   `yaml:"scopes" json:"scopes,omitempty"`
	Entities    []string   `yaml:"entities" json:"entities,omitempty"`
	Expiration  *time.Time `yaml:"expiration,omitempty" json:"expiration,omitempty"`
	Disabled    bool       `yaml:"disabled" json:"disabled"`
}

func (t *TokenInfo) IsExpired(now time.Time) bool {
	return t.Expiration != nil && t.Expiration.Before(now)
}

// CanActFor reports whether the token may be used on behalf of entityID.
func (t *TokenInfo) CanActFor(entityID string) bool {
	return slices.Contains(t.Entities, entityID)
}

func (t *TokenInfo) Credentials() Credentials {
	creds := Credentials{
		"id":        t.ID,
		"principal": t.Principal,
	}
	if len(t.Scopes) > 0 {
		creds["scopes"] = slices.Clone(t.Scopes)
	}
	return creds
}
