package rest_test

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi"
	"context"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Crypto REST E2E (smoke)", func() {
	var (
		ctx    = context.Background()
		srvURL string
		pub    *openapi.ClientWithResponses
	)

	BeforeEach(func() {
		s := newTestServerFromConfig(TestConfigPath)
		srvURL = s.URL
		pub = newClient(srvURL)
		DeferCleanup(s.Close)
	})

	It("POST /api/crypto/digest: default algorithm", func() {
		res, err := pub.ComputeDigestWithResponse(ctx, openapi.ComputeDigestRequestBody{Plaintext: ptr(aliceToken)})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusOK)
		Expect(res.JSON200.Algorithm).To(Equal(openapi.RawSha256))
		Expect(res.JSON200.Digest).To(Equal("df01f19546dddd621e80e6bb4834c2f1e193a1a4a543c18e5f36504dce6b96cf"))
	})

	It("POST /api/crypto/digest: unknown algorithm -> 400", func() {
		res, err := pub.ComputeDigestWithResponse(ctx, openapi.ComputeDigestRequestBody{
			Plaintext: ptr("x"),
			Algorithm: ptr(openapi.HashAlgorithm("crypt-sha512")),
		})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusBadRequest)
		Expect(res.JSON400.Message).To(ContainSubstring("crypt-sha512"))
	})

	It("POST /api/crypto/digest: missing plaintext -> 400", func() {
		res, err := pub.ComputeDigestWithResponse(ctx, openapi.ComputeDigestRequestBody{})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusBadRequest)
	})

	It("POST /api/crypto/digest: non-JSON body -> 415", func() {
		res, err := pub.ComputeDigestWithBodyWithResponse(ctx, "text/plain", strings.NewReader("x"))
		Expect(err).NotTo(HaveOccurred())
		mustStatus(res.StatusCode(), res.Body, http.StatusUnsupportedMediaType)
	})

	It("POST /api/crypto/verify: good and bad plaintext", func() {
		h, err := pub.ComputeDigestWithResponse(ctx, openapi.ComputeDigestRequestBody{
			Plaintext: ptr("p@ss"), Algorithm: ptr(openapi.RawSha512),
		})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(h.StatusCode(), h.Body, http.StatusOK)

		ok, err := pub.VerifyDigestWithResponse(ctx, openapi.VerifyDigestRequestBody{
			Digest: h.JSON200.Digest, Plaintext: ptr("p@ss"),
		})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(ok.StatusCode(), ok.Body, http.StatusOK)
		Expect(ok.JSON200.Verified).To(BeTrue())
		Expect(ok.JSON200.DetectedAlgorithm).To(Equal("raw-sha512"))

		bad, err := pub.VerifyDigestWithResponse(ctx, openapi.VerifyDigestRequestBody{
			Digest: h.JSON200.Digest, Plaintext: ptr("nope"),
		})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(bad.StatusCode(), bad.Body, http.StatusOK)
		Expect(bad.JSON200.Verified).To(BeFalse())
	})

	It("GET /api/crypto/secret: explicit size and default=32", func() {
		r48, err := pub.GenerateSecretWithResponse(ctx, &openapi.GenerateSecretParams{Size: ptr(48)})
		Expect(err).NotTo(HaveOccurred())
		mustStatus(r48.StatusCode(), r48.Body, http.StatusOK)
		Expect(r48.JSON200.SizeBytes).To(Equal(48))
		Expect(r48.JSON200.Hex).To(HaveLen(96))

		def, err := pub.GenerateSecretWithResponse(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		mustStatus(def.StatusCode(), def.Body, http.StatusOK)
		Expect(def.JSON200.SizeBytes).To(Equal(32))
	})

	It("GET /api/crypto/secret: malformed size -> 400 JSON error", func() {
		code, body := getRaw(srvURL + "/api/crypto/secret?size=abc")
		mustStatus(code, body, http.StatusBadRequest)
		Expect(decodeError(body).Message).To(ContainSubstring("size"))
	})
})
