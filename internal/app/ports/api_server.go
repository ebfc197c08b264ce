package ports

import "context"

type ApiServer interface {
	HealthCheck() error

	GenerateSecret(requestedSize *int) (size int, secret []byte, err error)
	ComputeDigest(plaintext string, algorithm *HashAlgo) (digest string, algo HashAlgo, err error)
	VerifyDigest(digest, plaintext string) (verified bool, algorithm HashAlgo, err error)

	// DescribeToken returns the record a clear-text token resolves to.
	DescribeToken(ctx context.Context, plaintext string) (TokenInfo, error)
	ListTokens(ctx context.Context) ([]TokenInfo, error)
	// IssueToken generates a new random token, stores its digest and returns the
	// clear-text token; it is not recoverable afterwards.
	IssueToken(ctx context.Context, info TokenInfo) (plaintext string, stored TokenInfo, err error)
	// EnsureToken stores the record unless a record with the same digest exists.
	EnsureToken(ctx context.Context, token string, info TokenInfo, tokenIsDigest bool) (stored TokenInfo, created bool, err error)
	RevokeToken(ctx context.Context, digest string) error
	// SetTokenDisabled blocks or unblocks the record with the given digest.
	SetTokenDisabled(ctx context.Context, digest string, disabled bool) (TokenInfo, error)
}
