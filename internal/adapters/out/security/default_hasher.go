package security

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// DefaultHasher produces unsalted hex digests of tokens. Digests are used as
// lookup keys by token repositories, so they must be deterministic.
type DefaultHasher struct {
	defaultAlg ports.HashAlgo
}

// Enforce compile-time conformance to the interface
var _ ports.Hasher = (*DefaultHasher)(nil)

func NewDefaultHasher() *DefaultHasher {
	return &DefaultHasher{defaultAlg: ports.AlgoRawSHA256}
}

func NewDefaultHasherFromConfig(cfg config.HasherConfig) (*DefaultHasher, error) {
	alg, err := ports.ParseHashAlgo(cfg.DefaultAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("hasher default algorithm '%s': %w", cfg.DefaultAlgorithm, err)
	}
	return &DefaultHasher{defaultAlg: alg}, nil
}

func (c *DefaultHasher) SupportedAlgorithms() []ports.HashAlgo {
	return []ports.HashAlgo{ports.AlgoRawSHA256, ports.AlgoRawSHA384, ports.AlgoRawSHA512}
}

func (c *DefaultHasher) DefaultAlgorithm() ports.HashAlgo {
	return c.defaultAlg
}

func (c *DefaultHasher) DefaultDigest(plain string) (string, error) {
	return c.Digest(plain, c.defaultAlg)
}

func (c *DefaultHasher) Digest(plain string, alg ports.HashAlgo) (string, error) {
	h, err := resolveHash(alg)
	if err != nil {
		return "", err
	}
	_, _ = h.Write([]byte(plain))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Verify compares a stored digest against the provided plaintext.
func (c *DefaultHasher) Verify(digest, plain string) (verified bool, alg ports.HashAlgo, err error) {
	alg, err = ports.DetectHashAlgo(digest)
	if err != nil {
		return false, alg, err
	}
	computed, err := c.Digest(plain, alg)
	if err != nil {
		return false, alg, err
	}
	return stringsEq(strings.ToLower(strings.TrimSpace(digest)), computed), alg, nil
}

func resolveHash(alg ports.HashAlgo) (hash.Hash, error) {
	switch alg {
	case ports.AlgoRawSHA256:
		return sha256.New(), nil
	case ports.AlgoRawSHA384:
		return sha512.New384(), nil
	case ports.AlgoRawSHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("cannot create hash for algorithm %s: %w", alg, ports.ErrUnsupportedAlgorithm)
	}
}

// stringsEq compares ASCII strings in constant time (only if lengths match).
func stringsEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
