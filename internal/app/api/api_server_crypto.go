package api

import (
	"bearer-auth-api/internal/app/ports"
	"crypto/rand"
	"fmt"
)

func (s *DefaultApiServer) GenerateSecret(requestedSize *int) (size int, secret []byte, err error) {
	size = 32
	if requestedSize != nil {
		if *requestedSize >= 16 && *requestedSize <= 128 {
			size = *requestedSize
		}
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return size, nil, err
	}
	return size, b, nil
}

// ComputeDigest uses the hasher's default algorithm when none is given.
func (s *DefaultApiServer) ComputeDigest(plaintext string, algorithm *ports.HashAlgo) (digest string, algo ports.HashAlgo, err error) {
	if plaintext == "" {
		return "", "", fmt.Errorf("%w: plaintext is required", ports.ErrInvalidInput)
	}
	algo = s.hasher.DefaultAlgorithm()
	if algorithm != nil {
		algo = *algorithm
	}
	digest, err = s.hasher.Digest(plaintext, algo)
	if err != nil {
		return "", algo, fmt.Errorf("computing digest error: %w", err)
	}
	return digest, algo, nil
}

func (s *DefaultApiServer) VerifyDigest(digest, plaintext string) (verified bool, algorithm ports.HashAlgo, err error) {
	return s.hasher.Verify(digest, plaintext)
}
