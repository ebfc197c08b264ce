package rest_test

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi"
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tokens admin REST E2E", func() {
	var (
		ctx    = context.Background()
		srvURL string
		admin  *openapi.ClientWithResponses
	)

	BeforeEach(func() {
		s := newTestServerFromConfig(TestConfigPath)
		srvURL = s.URL
		admin = newHmacClient(srvURL, apiKeyID, secretHex)
		DeferCleanup(s.Close)
	})

	whoamiStatus := func(token string) int {
		res, err := newBearerClient(srvURL, token).WhoAmIWithResponse(ctx)
		Expect(err).NotTo(HaveOccurred())
		return res.StatusCode()
	}

	It("admin routes reject bearer tokens", func() {
		res, err := newBearerClient(srvURL, aliceToken).ListTokensWithResponse(ctx)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusUnauthorized)
		Expect(res.HTTPResponse.Header.Values("WWW-Authenticate")).To(Equal([]string{"HMAC"}))
	})

	It("admin routes reject unknown keys", func() {
		res, err := newHmacClient(srvURL, "key2", secretHex).ListTokensWithResponse(ctx)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusUnauthorized)
	})

	It("lists the seeded tokens", func() {
		res, err := admin.ListTokensWithResponse(ctx)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusOK)
		ids := make([]string, 0, len(res.JSON200.Tokens))
		for _, t := range res.JSON200.Tokens {
			ids = append(ids, t.Id)
			Expect(t.Digest).To(HaveLen(64))
		}
		Expect(ids).To(ConsistOf("alice", "blocked", "expired", "bob"))
	})

	It("issue -> authenticate -> revoke -> rejected", func() {
		res, err := admin.IssueTokenWithResponse(ctx, openapi.IssueTokenRequestBody{
			Principal: ptr("ci-bot"),
			Scopes:    ptr([]string{"deploy"}),
		})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusCreated)
		issued := res.JSON201
		Expect(issued.Token).NotTo(BeEmpty())
		Expect(issued.Info.Principal).To(Equal("ci-bot"))

		// warm the validator cache; revocation has to invalidate it
		Expect(whoamiStatus(issued.Token)).To(Equal(http.StatusOK))

		described, err := admin.DescribeTokenWithResponse(ctx, openapi.DescribeTokenRequestBody{Token: issued.Token})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(described.StatusCode(), described.Body, http.StatusOK)
		Expect(described.JSON200.Id).To(Equal(issued.Info.Id))
		Expect(*described.JSON200.Scopes).To(ConsistOf("deploy"))

		revoked, err := admin.RevokeTokenWithResponse(ctx, issued.Info.Digest)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(revoked.StatusCode(), revoked.Body, http.StatusNoContent)
		Expect(whoamiStatus(issued.Token)).To(Equal(http.StatusUnauthorized))

		again, err := admin.RevokeTokenWithResponse(ctx, issued.Info.Digest)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(again.StatusCode(), again.Body, http.StatusNotFound)
	})

	It("block -> blocked message -> unblock -> authenticated", func() {
		aliceDigest := sha256Hex([]byte(aliceToken))

		// warm the validator cache; blocking has to invalidate it
		Expect(whoamiStatus(aliceToken)).To(Equal(http.StatusOK))

		blocked, err := admin.SetTokenDisabledWithResponse(ctx, aliceDigest, openapi.SetTokenDisabledRequestBody{Disabled: true})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(blocked.StatusCode(), blocked.Body, http.StatusOK)
		Expect(blocked.JSON200.Disabled).To(BeTrue())
		Expect(blocked.JSON200.Id).To(Equal("alice"))

		res, err := newBearerClient(srvURL, aliceToken).WhoAmIWithResponse(ctx)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusUnauthorized)
		Expect(res.JSON401.Message).To(ContainSubstring("blocked"))

		unblocked, err := admin.SetTokenDisabledWithResponse(ctx, aliceDigest, openapi.SetTokenDisabledRequestBody{Disabled: false})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(unblocked.StatusCode(), unblocked.Body, http.StatusOK)
		Expect(whoamiStatus(aliceToken)).To(Equal(http.StatusOK))
	})

	It("blocking an unknown digest -> 404", func() {
		res, err := admin.SetTokenDisabledWithResponse(ctx, sha256Hex([]byte("nope")), openapi.SetTokenDisabledRequestBody{Disabled: true})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusNotFound)
	})

	It("blocking requires the admin chain", func() {
		res, err := newBearerClient(srvURL, aliceToken).SetTokenDisabledWithResponse(ctx, sha256Hex([]byte(aliceToken)), openapi.SetTokenDisabledRequestBody{Disabled: true})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusUnauthorized)
	})

	It("issuing with a taken id -> 409", func() {
		res, err := admin.IssueTokenWithResponse(ctx, openapi.IssueTokenRequestBody{Id: ptr("alice")})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusConflict)
	})

	It("describing an unknown token -> 404", func() {
		res, err := admin.DescribeTokenWithResponse(ctx, openapi.DescribeTokenRequestBody{Token: "nope"})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusNotFound)
	})
})

var _ = Describe("Service endpoints E2E", func() {
	var (
		ctx    = context.Background()
		srvURL string
	)

	BeforeEach(func() {
		s := newTestServerFromConfig(TestConfigPath)
		srvURL = s.URL
		DeferCleanup(s.Close)
	})

	It("health, liveness, readiness and the OpenAPI document are public", func() {
		res, err := newClient(srvURL).HealthWithResponse(ctx)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusOK)
		Expect(res.JSON200.Healthy).To(BeTrue())
		Expect(res.JSON200.Banner).To(Equal("Bearer Auth API (test)"))

		code, body := getRaw(srvURL + "/healthz")
		mustStatus(code, body, http.StatusOK)
		code, body = getRaw(srvURL + "/readyz")
		mustStatus(code, body, http.StatusOK)

		code, body = getRaw(srvURL + "/openapi.yaml")
		mustStatus(code, body, http.StatusOK)
		Expect(string(body)).To(ContainSubstring("openapi: 3"))
	})
})
