package security

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// JWTValidator accepts self-contained HMAC-signed JWTs as bearer tokens.
// A token that fails verification is reported invalid, never as an error.
type JWTValidator struct {
	secret      []byte
	parser      *jwt.Parser
	entityClaim string
	blockClaim  string
}

// Enforce compile-time conformance to the interface
var _ ports.Validator = (*JWTValidator)(nil)

func NewJWTValidator(cfg config.JWTConfig) (*JWTValidator, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("%w: jwt secret is required", ports.ErrInvalidStrategyConfig)
	}
	if len(cfg.AllowedAlgs) == 0 {
		return nil, fmt.Errorf("%w: jwt allowed algorithms must not be empty", ports.ErrInvalidStrategyConfig)
	}
	for _, alg := range cfg.AllowedAlgs {
		if _, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: jwt algorithm %s", ports.ErrUnsupportedAlgorithm, alg)
		}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(cfg.AllowedAlgs),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &JWTValidator{
		secret:      []byte(cfg.Secret),
		parser:      jwt.NewParser(opts...),
		entityClaim: cfg.EntityClaim,
		blockClaim:  cfg.BlockClaim,
	}, nil
}

func (v *JWTValidator) Validate(_ context.Context, _ http.ResponseWriter, _ *http.Request, token string, entityID *string) (ports.ValidationResult, error) {
	claims := jwt.MapClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, v.keyfunc)
	if err != nil || !parsed.Valid {
		log.WithError(err).Debug("jwt verification failed")
		return ports.ValidationResult{}, nil
	}

	creds := ports.Credentials{}
	for k, val := range claims {
		creds[k] = val
	}
	if sub, _ := claims.GetSubject(); sub != "" {
		creds["principal"] = sub
	}

	if blocked, _ := claims[v.blockClaim].(bool); v.blockClaim != "" && blocked {
		return ports.ValidationResult{IsBlocked: true, Credentials: creds}, nil
	}
	if entityID != nil {
		if !slices.Contains(stringList(claims[v.entityClaim]), *entityID) {
			return ports.ValidationResult{}, nil
		}
		creds["entity_id"] = *entityID
	}
	return ports.ValidationResult{
		IsValid:     true,
		Credentials: creds,
		Artifacts:   map[string]any{"alg": parsed.Method.Alg()},
	}, nil
}

func (v *JWTValidator) keyfunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return v.secret, nil
}

// stringList accepts a claim given either as a single string or a list.
func stringList(claim any) []string {
	switch c := claim.(type) {
	case string:
		return []string{c}
	case []string:
		return c
	case []any:
		out := make([]string, 0, len(c))
		for _, e := range c {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
