package security

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HMACScheme authenticates API clients that sign each request with a shared secret.
type HMACScheme struct {
	window       time.Duration
	maxBodyBytes int64
	// accessSecrets maps public key-id -> secret bytes
	accessSecrets map[string][]byte
	now           func() time.Time
}

// Enforce compile-time conformance to the interface
var _ ports.Strategy = (*HMACScheme)(nil)

// Headers as constants for consistency
const (
	HMACStrategyName  = "hmac"
	hmacScheme        = "HMAC"
	hdrAPIKey         = "X-Api-Key"
	hmacHdrTimestamp  = "X-Timestamp"
	hmacHdrBodySHA256 = "X-Content-Sha256"
)

// defaultMaxSignedBodyBytes caps the body read for hashing.
const defaultMaxSignedBodyBytes = 1 << 20

var errMissingSignature = errors.New("missing auth headers")

func NewHMACScheme(cfg config.HMACConfig) (*HMACScheme, error) {
	win := time.Duration(cfg.WindowSeconds) * time.Second
	if win <= 0 {
		win = 5 * time.Minute
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxSignedBodyBytes
	}

	// decode hex secrets
	secrets := make(map[string][]byte, len(cfg.AccessKeys))
	for keyID, hexSecret := range cfg.AccessKeys {
		hexSecret = strings.TrimSpace(hexSecret)
		if hexSecret == "" {
			return nil, fmt.Errorf("%w: empty secret for key %s", ports.ErrInvalidStrategyConfig, keyID)
		}
		raw, err := hex.DecodeString(hexSecret)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hex secret for key %s: %v", ports.ErrInvalidStrategyConfig, keyID, err)
		}
		secrets[keyID] = raw
	}

	return &HMACScheme{
		window:        win,
		maxBodyBytes:  maxBody,
		accessSecrets: secrets,
		now:           time.Now,
	}, nil
}

func (s *HMACScheme) Name() string {
	return HMACStrategyName
}

func (s *HMACScheme) Authenticate(_ http.ResponseWriter, r *http.Request) (ports.Outcome, error) {
	ts, err := s.verify(r)
	switch {
	case errors.Is(err, errMissingSignature):
		return ports.Challenged(ports.NewUnauthorized(nil, hmacScheme)), nil
	case err != nil:
		msg := err.Error()
		return ports.Rejected(ports.NewUnauthorized(&msg, hmacScheme), nil, nil), nil
	}
	keyID := r.Header.Get(hdrAPIKey)
	return ports.Authenticated(
		ports.Credentials{"key_id": keyID},
		map[string]any{"signed_at": ts},
	), nil
}

// verify does pure auth logic; no writes to ResponseWriter.
func (s *HMACScheme) verify(r *http.Request) (time.Time, error) {
	apiKey := r.Header.Get(hdrAPIKey)
	authz := r.Header.Get(hdrAuthz)
	tsStr := r.Header.Get(hmacHdrTimestamp)
	bodySHA := r.Header.Get(hmacHdrBodySHA256)

	if !strings.HasPrefix(authz, hmacScheme+" ") {
		return time.Time{}, errMissingSignature
	}
	if apiKey == "" || tsStr == "" || bodySHA == "" {
		return time.Time{}, errMissingSignature
	}
	secret, ok := s.accessSecrets[apiKey]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown api key")
	}
	sigHex := strings.TrimPrefix(authz, hmacScheme+" ")

	// Timestamp window (replay)
	ts, err := time.Parse(time.RFC3339, tsStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp")
	}
	if d := s.now().UTC().Sub(ts); d > s.window || d < -s.window {
		return time.Time{}, fmt.Errorf("timestamp outside allowed window")
	}

	// Compute/verify body hash; restore body afterwards
	localHash, err := bodyHashAndRestore(r, s.maxBodyBytes)
	if err != nil {
		return time.Time{}, fmt.Errorf("body read error: %w", err)
	}
	if !strings.EqualFold(bodySHA, localHash) {
		return time.Time{}, fmt.Errorf("body hash mismatch")
	}

	// Canonical path: prefer EscapedPath to preserve encoding, avoid Clean()
	pathWithQuery := r.URL.EscapedPath()
	if raw := r.URL.RawQuery; raw != "" {
		pathWithQuery = pathWithQuery + "?" + raw
	}

	canonical := strings.Join([]string{
		r.Method,
		pathWithQuery,
		tsStr,
		localHash,
	}, "\n")

	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write([]byte(canonical))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(sigHex)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad signature encoding")
	}
	if !hmac.Equal(provided, expected) {
		return time.Time{}, fmt.Errorf("bad signature")
	}
	return ts, nil
}

func bodyHashAndRestore(r *http.Request, maxBytes int64) (string, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBytes))
		if err != nil {
			return "", err
		}
		body = b
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(b))
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}
