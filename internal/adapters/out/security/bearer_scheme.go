package security

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const (
	BearerStrategyName = "bearer"
	hdrAuthz           = "Authorization"

	blockedMessage           = "Oops, Your account is blocked. Please contact your admin"
	badTokenMessage          = "Bad token"
	badImplementationMessage = "Bad token string received for Bearer auth validation"
)

var whitespace = regexp.MustCompile(`\s+`)

// BearerOptions configures a BearerScheme. Use DefaultBearerOptions as a base:
// NewBearerScheme does not fill in empty fields except Name and Unauthorized.
type BearerOptions struct {
	Name                 string
	Validator            ports.Validator
	AccessTokenName      string
	AllowQueryToken      bool
	AllowCookieToken     bool
	AllowMultipleHeaders bool
	AllowChaining        bool
	TokenType            string
	EntityType           string
	Unauthorized         ports.UnauthorizedFunc
}

func DefaultBearerOptions(validator ports.Validator) BearerOptions {
	return BearerOptions{
		Name:            BearerStrategyName,
		Validator:       validator,
		AccessTokenName: "access_token",
		TokenType:       "Bearer",
		Unauthorized:    ports.NewUnauthorized,
	}
}

func BearerOptionsFromConfig(cfg config.BearerConfig, validator ports.Validator) BearerOptions {
	opts := DefaultBearerOptions(validator)
	opts.AccessTokenName = cfg.AccessTokenName
	opts.AllowQueryToken = cfg.AllowQueryToken
	opts.AllowCookieToken = cfg.AllowCookieToken
	opts.AllowMultipleHeaders = cfg.AllowMultipleHeaders
	opts.AllowChaining = cfg.AllowChaining
	opts.TokenType = cfg.TokenType
	opts.EntityType = cfg.EntityType
	return opts
}

func (o *BearerOptions) validate() error {
	var errs []error
	if o.Validator == nil {
		errs = append(errs, errors.New("validator is required"))
	}
	if strings.TrimSpace(o.AccessTokenName) == "" {
		errs = append(errs, errors.New("access token name must be a non-empty string"))
	}
	if strings.TrimSpace(o.TokenType) == "" {
		errs = append(errs, errors.New("token type must be a non-empty string"))
	}
	if o.AllowMultipleHeaders && strings.TrimSpace(o.EntityType) == "" {
		errs = append(errs, errors.New("entity type is required when multiple headers are allowed"))
	}
	return errors.Join(errs...)
}

// ExtractedCredential is the parsed form of one authorization string.
type ExtractedCredential struct {
	TokenType string
	Token     string
	EntityID  *string
}

// BearerScheme resolves a bearer credential from a request and turns the
// validator's verdict into an Outcome. It is immutable once built.
type BearerScheme struct {
	opts         BearerOptions
	headerRegExp *regexp.Regexp
	entityRegExp *regexp.Regexp
}

// Enforce compile-time conformance to the interface
var _ ports.Strategy = (*BearerScheme)(nil)

func NewBearerScheme(opts BearerOptions) (*BearerScheme, error) {
	if opts.Name == "" {
		opts.Name = BearerStrategyName
	}
	if opts.Unauthorized == nil {
		opts.Unauthorized = ports.NewUnauthorized
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ports.ErrInvalidStrategyConfig, opts.Name, err)
	}

	s := &BearerScheme{
		opts:         opts,
		headerRegExp: credentialRegExp(opts.TokenType),
	}
	if opts.EntityType != "" {
		s.entityRegExp = credentialRegExp(opts.EntityType)
	}
	return s, nil
}

func credentialRegExp(kind string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kind) + `\s+([^;$]+)`)
}

func (s *BearerScheme) Name() string {
	return s.opts.Name
}

func (s *BearerScheme) Options() BearerOptions {
	return s.opts
}

// Authenticate never writes to w; w is handed to the validator as-is.
func (s *BearerScheme) Authenticate(w http.ResponseWriter, r *http.Request) (ports.Outcome, error) {
	authorization, found := s.lookupAuthorization(r)
	if !found {
		return ports.Challenged(s.opts.Unauthorized(nil, s.opts.TokenType)), nil
	}

	cred, err := s.parse(authorization)
	if err != nil {
		return ports.Challenged(err), nil
	}

	result, err := s.opts.Validator.Validate(r.Context(), w, r, cred.Token, cred.EntityID)
	if err != nil {
		return ports.Outcome{}, err
	}
	return s.decide(r, result), nil
}

// lookupAuthorization picks the first available source: header, cookie, query.
// A query credential is removed from the request once consumed.
func (s *BearerScheme) lookupAuthorization(r *http.Request) (string, bool) {
	if authorization := r.Header.Get(hdrAuthz); authorization != "" {
		return authorization, true
	}
	if s.opts.AllowCookieToken {
		if c, err := r.Cookie(s.opts.AccessTokenName); err == nil && c.Value != "" {
			return s.opts.TokenType + " " + c.Value, true
		}
	}
	if s.opts.AllowQueryToken && r.URL != nil {
		query := r.URL.Query()
		if v := query.Get(s.opts.AccessTokenName); v != "" {
			r.URL.RawQuery = removeQueryParam(r.URL.RawQuery, s.opts.AccessTokenName)
			return s.opts.TokenType + " " + v, true
		}
	}
	return "", false
}

// removeQueryParam drops every pair named name from rawQuery. The remaining
// pairs keep their order and encoding, including ones url.ParseQuery rejects.
func removeQueryParam(rawQuery, name string) string {
	pairs := strings.Split(rawQuery, "&")
	kept := pairs[:0]
	for _, pair := range pairs {
		key, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil {
			key = unescaped
		}
		if key == name {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}

func (s *BearerScheme) parse(authorization string) (ExtractedCredential, error) {
	var cred ExtractedCredential

	if s.opts.AllowMultipleHeaders {
		original := authorization
		if m := s.headerRegExp.FindString(original); m != "" {
			authorization = m
		}
		entityAuthorization := s.entityRegExp.FindString(original)
		if entityAuthorization == "" {
			return cred, s.opts.Unauthorized(nil, s.opts.EntityType)
		}
		entityType, entityID := splitCredential(entityAuthorization)
		if entityID == "" || !strings.EqualFold(entityType, s.opts.EntityType) {
			return cred, s.opts.Unauthorized(nil, s.opts.EntityType)
		}
		cred.EntityID = &entityID
	}

	tokenType, token := splitCredential(authorization)
	if token == "" || !strings.EqualFold(tokenType, s.opts.TokenType) {
		return cred, s.opts.Unauthorized(nil, s.opts.TokenType)
	}
	cred.TokenType = tokenType
	cred.Token = token
	return cred, nil
}

// splitCredential returns the first two whitespace separated fields of s.
func splitCredential(s string) (kind, value string) {
	parts := whitespace.Split(s, 3)
	kind = parts[0]
	if len(parts) > 1 {
		value = parts[1]
	}
	return kind, value
}

func (s *BearerScheme) decide(r *http.Request, result ports.ValidationResult) ports.Outcome {
	if result.IsBlocked {
		msg := blockedMessage
		return ports.Rejected(s.opts.Unauthorized(&msg, s.opts.TokenType), result.Credentials, result.Artifacts)
	}
	if !result.IsValid {
		var msg *string
		if !s.opts.AllowChaining || !routeHasAlternatives(r) {
			m := badTokenMessage
			msg = &m
		}
		return ports.Rejected(s.opts.Unauthorized(msg, s.opts.TokenType), result.Credentials, result.Artifacts)
	}
	if result.Credentials == nil {
		return ports.Faulted(fmt.Errorf("%w: %s", ports.ErrBadImplementation, badImplementationMessage))
	}
	return ports.Authenticated(result.Credentials, result.Artifacts)
}

func routeHasAlternatives(r *http.Request) bool {
	ra, ok := ports.RouteAuthFromContext(r.Context())
	return ok && len(ra.Strategies) > 1
}
