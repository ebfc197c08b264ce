package ports

import (
	"strings"
)

type HashAlgo string

const (
	AlgoRawSHA256 HashAlgo = "raw-sha256" // 64 hex
	AlgoRawSHA384 HashAlgo = "raw-sha384" // 96 hex
	AlgoRawSHA512 HashAlgo = "raw-sha512" // 128 hex
)

// Hasher turns tokens into the deterministic digests token repositories are keyed by.
type Hasher interface {
	DefaultAlgorithm() HashAlgo
	DefaultDigest(plain string) (digest string, err error)
	Digest(plain string, alg HashAlgo) (digest string, err error)
	Verify(digest, plain string) (verified bool, alg HashAlgo, err error)
	SupportedAlgorithms() []HashAlgo
}

func ParseHashAlgo(s string) (HashAlgo, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "raw-sha256", "sha256":
		return AlgoRawSHA256, nil
	case "raw-sha384", "sha384":
		return AlgoRawSHA384, nil
	case "raw-sha512", "sha512":
		return AlgoRawSHA512, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// DetectHashAlgo inspects a stored digest and returns its algorithm.
func DetectHashAlgo(digest string) (HashAlgo, error) {
	ls := strings.ToLower(strings.TrimSpace(digest))
	switch {
	case isHexLen(ls, 64):
		return AlgoRawSHA256, nil
	case isHexLen(ls, 96):
		return AlgoRawSHA384, nil
	case isHexLen(ls, 128):
		return AlgoRawSHA512, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// isHexLen returns true if s is exactly n hex chars (0-9a-f).
func isHexLen(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < n; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
