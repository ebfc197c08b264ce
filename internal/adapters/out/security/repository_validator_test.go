package security_test

import (
	"bearer-auth-api/internal/adapters/out/security"
	"bearer-auth-api/internal/adapters/out/tokens"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// countingRepo counts digest lookups and can be made to fail.
type countingRepo struct {
	ports.TokenRepository
	lookups int
	fail    error
}

func (r *countingRepo) GetTokenByDigest(ctx context.Context, digest string) (ports.TokenInfo, error) {
	r.lookups++
	if r.fail != nil {
		return ports.TokenInfo{}, r.fail
	}
	return r.TokenRepository.GetTokenByDigest(ctx, digest)
}

var _ = Describe("RepositoryValidator", func() {
	var (
		hasher    *security.DefaultHasher
		repo      *countingRepo
		validator *security.RepositoryValidator
		ctx       context.Context
	)

	addToken := func(plain string, info ports.TokenInfo) {
		digest, err := hasher.DefaultDigest(plain)
		Expect(err).ToNot(HaveOccurred())
		info.Digest = digest
		_, err = repo.AddToken(ctx, info)
		Expect(err).ToNot(HaveOccurred())
	}

	validate := func(token string, entityID *string) ports.ValidationResult {
		res, err := validator.Validate(ctx, nil, nil, token, entityID)
		Expect(err).ToNot(HaveOccurred())
		return res
	}

	BeforeEach(func() {
		ctx = context.Background()
		hasher = security.NewDefaultHasher()
		inmem, err := tokens.NewInMemTokenRepository(config.TokenRepositoryInMemConfig{EntitiesLimit: 100})
		Expect(err).ToNot(HaveOccurred())
		repo = &countingRepo{TokenRepository: inmem}
		validator, err = security.NewRepositoryValidator(hasher, repo, config.ValidatorCache{Size: 16, TTL: time.Minute})
		Expect(err).ToNot(HaveOccurred())

		past := time.Now().Add(-time.Hour)
		addToken("good-token", ports.TokenInfo{ID: "t1", Principal: "alice", Scopes: []string{"read"}, Entities: []string{"acme"}})
		addToken("disabled-token", ports.TokenInfo{ID: "t2", Principal: "bob", Disabled: true})
		addToken("expired-token", ports.TokenInfo{ID: "t3", Principal: "carol", Expiration: &past})
	})

	It("accepts a known token and returns its credentials", func() {
		res := validate("good-token", nil)
		Expect(res.IsValid).To(BeTrue())
		Expect(res.IsBlocked).To(BeFalse())
		Expect(res.Credentials).To(HaveKeyWithValue("id", "t1"))
		Expect(res.Credentials).To(HaveKeyWithValue("principal", "alice"))
		Expect(res.Credentials).To(HaveKeyWithValue("scopes", []string{"read"}))
		Expect(res.Artifacts).To(HaveKey("attempt_id"))
	})

	It("refuses unknown tokens", func() {
		res := validate("nope", nil)
		Expect(res.IsValid).To(BeFalse())
		Expect(res.IsBlocked).To(BeFalse())
	})

	It("reports disabled tokens as blocked", func() {
		res := validate("disabled-token", nil)
		Expect(res.IsBlocked).To(BeTrue())
		Expect(res.IsValid).To(BeFalse())
	})

	It("refuses expired tokens", func() {
		res := validate("expired-token", nil)
		Expect(res.IsValid).To(BeFalse())
		Expect(res.IsBlocked).To(BeFalse())
	})

	It("checks the entity the token acts for", func() {
		res := validate("good-token", ptr("acme"))
		Expect(res.IsValid).To(BeTrue())
		Expect(res.Credentials).To(HaveKeyWithValue("entity_id", "acme"))

		res = validate("good-token", ptr("globex"))
		Expect(res.IsValid).To(BeFalse())
	})

	It("caches lookups including misses until invalidated", func() {
		validate("good-token", nil)
		validate("good-token", nil)
		validate("nope", nil)
		validate("nope", nil)
		Expect(repo.lookups).To(Equal(2))

		digest, _ := hasher.DefaultDigest("good-token")
		Expect(repo.DeleteToken(ctx, digest)).To(Succeed())
		Expect(validate("good-token", nil).IsValid).To(BeTrue(), "served from cache")

		validator.Invalidate(digest)
		Expect(validate("good-token", nil).IsValid).To(BeFalse())
		Expect(repo.lookups).To(Equal(3))
	})

	It("propagates repository failures as errors", func() {
		repo.fail = errors.New("connection refused")
		_, err := validator.Validate(ctx, nil, nil, "other-token", nil)
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
	})

	It("requires a hasher and a repository", func() {
		_, err := security.NewRepositoryValidator(nil, repo, config.ValidatorCache{})
		Expect(err).To(MatchError(ports.ErrInvalidStrategyConfig))
	})
})
