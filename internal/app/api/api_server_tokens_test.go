package api_test

import (
	"bearer-auth-api/internal/adapters/out/security"
	"bearer-auth-api/internal/adapters/out/tokens"
	"bearer-auth-api/internal/app/api"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tokens API (unit)", func() {
	var (
		apis    *api.DefaultApiServer
		changed []string
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		changed = nil
		repo, err := tokens.NewInMemTokenRepository(config.TokenRepositoryInMemConfig{EntitiesLimit: 10})
		Expect(err).NotTo(HaveOccurred())
		apis, err = api.NewDefaultApiServer(security.NewDefaultHasher(), repo,
			api.WithTokenChangeHook(func(digest string) { changed = append(changed, digest) }))
		Expect(err).NotTo(HaveOccurred())
	})

	It("ensures a clear-text token once and describes it", func() {
		stored, created, err := apis.EnsureToken(ctx, "plain-1", ports.TokenInfo{ID: "t1", Principal: "alice"}, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())
		Expect(stored.Digest).To(HaveLen(64))
		Expect(changed).To(Equal([]string{stored.Digest}))

		_, created, err = apis.EnsureToken(ctx, "plain-1", ports.TokenInfo{ID: "t1"}, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeFalse())

		info, err := apis.DescribeToken(ctx, "plain-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Principal).To(Equal("alice"))

		_, err = apis.DescribeToken(ctx, "plain-2")
		Expect(err).To(MatchError(ports.ErrNotFound))
	})

	It("stores digests as given and fills id and principal", func() {
		digest := "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08" // sha256("test")
		stored, created, err := apis.EnsureToken(ctx, digest, ports.TokenInfo{}, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())
		Expect(stored.ID).NotTo(BeEmpty())
		Expect(stored.Principal).To(Equal(stored.ID))

		info, err := apis.DescribeToken(ctx, "test")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.ID).To(Equal(stored.ID))
	})

	It("issues random tokens that resolve to their record", func() {
		plain, stored, err := apis.IssueToken(ctx, ports.TokenInfo{Principal: "ci", Scopes: []string{"deploy"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(HaveLen(43)) // 32 bytes, unpadded base64url

		info, err := apis.DescribeToken(ctx, plain)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.ID).To(Equal(stored.ID))
		Expect(info.Scopes).To(ConsistOf("deploy"))

		list, err := apis.ListTokens(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
	})

	It("revokes tokens and reports the change", func() {
		_, stored, err := apis.IssueToken(ctx, ports.TokenInfo{})
		Expect(err).NotTo(HaveOccurred())

		Expect(apis.RevokeToken(ctx, stored.Digest)).To(Succeed())
		Expect(changed).To(HaveLen(2))
		Expect(apis.RevokeToken(ctx, stored.Digest)).To(MatchError(ports.ErrNotFound))
	})

	It("blocks and unblocks tokens and reports each change", func() {
		plain, stored, err := apis.IssueToken(ctx, ports.TokenInfo{Principal: "ci"})
		Expect(err).NotTo(HaveOccurred())
		changed = nil

		blocked, err := apis.SetTokenDisabled(ctx, strings.ToUpper(stored.Digest), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(blocked.Disabled).To(BeTrue())
		Expect(changed).To(Equal([]string{stored.Digest}))

		info, err := apis.DescribeToken(ctx, plain)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Disabled).To(BeTrue())
		Expect(info.Principal).To(Equal("ci"))

		_, err = apis.SetTokenDisabled(ctx, stored.Digest, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(changed).To(HaveLen(1), "unchanged records are not reported")

		unblocked, err := apis.SetTokenDisabled(ctx, stored.Digest, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(unblocked.Disabled).To(BeFalse())
		Expect(changed).To(HaveLen(2))
	})

	It("reports unknown digests when blocking", func() {
		_, err := apis.SetTokenDisabled(ctx, "00", true)
		Expect(err).To(MatchError(ports.ErrNotFound))
	})

	It("refuses empty tokens", func() {
		_, _, err := apis.EnsureToken(ctx, " ", ports.TokenInfo{}, false)
		Expect(err).To(MatchError(ports.ErrInvalidInput))
	})

	It("is healthy when its repository is", func() {
		Expect(apis.HealthCheck()).To(Succeed())
	})
})
