package security_test

import (
	"bearer-auth-api/internal/adapters/out/security"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// --- helpers ---

func sha256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func signHMAC(method, pathWithQuery string, ts string, body []byte, secretHex string) string {
	// canonical: METHOD \n PATH(+query) \n TIMESTAMP \n BODY_SHA256_HEX
	bodyHash := sha256Hex(body)
	msg := method + "\n" + pathWithQuery + "\n" + ts + "\n" + bodyHash
	key := mustDecodeHex(secretHex)
	m := hmac.New(sha256.New, key)
	m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

func newHmacSignedRequest(method, url string, body []byte, apiKeyID, secretHex, ts string) *http.Request {
	var rdr io.ReadCloser
	if body != nil {
		rdr = io.NopCloser(bytes.NewReader(body))
	}
	req, _ := http.NewRequest(method, url, rdr)
	if body == nil {
		body = []byte{}
	}
	bodyHash := sha256Hex(body)
	req.Header.Set("X-Api-Key", apiKeyID)
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Content-Sha256", bodyHash)

	// Build path+query for signature (same as server uses)
	pathWithQuery := req.URL.EscapedPath()
	if q := req.URL.RawQuery; q != "" {
		pathWithQuery += "?" + q
	}
	sig := signHMAC(method, pathWithQuery, ts, body, secretHex)
	req.Header.Set("Authorization", "HMAC "+sig)
	return req
}

// --- tests ---

const (
	apiKeyID  = "test-key"
	secretHex = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
)

func newTestHMACScheme() *security.HMACScheme {
	scheme, err := security.NewHMACScheme(config.HMACConfig{
		WindowSeconds: 300,
		AccessKeys:    map[string]string{apiKeyID: secretHex},
	})
	Expect(err).NotTo(HaveOccurred())
	return scheme
}

var _ = Describe("HMACScheme.Authenticate", func() {
	var scheme *security.HMACScheme

	BeforeEach(func() {
		scheme = newTestHMACScheme()
	})

	It("accepts a valid signature within the time window", func() {
		ts := time.Now().UTC().Format(time.RFC3339)
		body := []byte(`{"hello":"world"}`)
		req := newHmacSignedRequest(http.MethodPost, "http://example.test/api/crypto/digest?x=1", body, apiKeyID, secretHex, ts)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeAuthenticated))
		Expect(out.Credentials).To(HaveKeyWithValue("key_id", apiKeyID))

		restored, err := io.ReadAll(req.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(restored).To(Equal(body), "body must be readable by the handler")
	})

	It("challenges when required headers are missing", func() {
		req, _ := http.NewRequest(http.MethodGet, "http://example.test/api/crypto/secret", nil)
		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeChallenge))
		Expect(out.Message()).To(BeNil())
	})

	It("challenges a bearer header instead of rejecting it", func() {
		req, _ := http.NewRequest(http.MethodGet, "http://example.test/api/crypto/secret", nil)
		req.Header.Set("Authorization", "Bearer abc")
		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeChallenge))
	})

	It("rejects when signature is invalid", func() {
		ts := time.Now().UTC().Format(time.RFC3339)
		req, _ := http.NewRequest(http.MethodGet, "http://example.test/api/crypto/secret", nil)
		req.Header.Set("X-Api-Key", apiKeyID)
		req.Header.Set("X-Timestamp", ts)
		req.Header.Set("X-Content-Sha256", sha256Hex([]byte{}))
		req.Header.Set("Authorization", "HMAC deadbeef")

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeRejected))
		Expect(*out.Message()).To(Equal("bad signature"))
	})

	It("rejects unknown api keys", func() {
		ts := time.Now().UTC().Format(time.RFC3339)
		req := newHmacSignedRequest(http.MethodGet, "http://example.test/api/crypto/secret", nil, "other-key", secretHex, ts)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeRejected))
	})

	It("rejects when timestamp is outside the allowed window", func() {
		old := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
		req := newHmacSignedRequest(http.MethodGet, "http://example.test/api/crypto/secret", nil, apiKeyID, secretHex, old)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeRejected))
		Expect(*out.Message()).To(ContainSubstring("window"))
	})

	It("rejects when X-Content-Sha256 doesn't match the actual body", func() {
		ts := time.Now().UTC().Format(time.RFC3339)

		body := []byte(`{"foo":"bar"}`)
		req, _ := http.NewRequest(http.MethodPost, "http://example.test/api/crypto/digest", io.NopCloser(bytes.NewReader(body)))

		req.Header.Set("X-Api-Key", apiKeyID)
		req.Header.Set("X-Timestamp", ts)
		req.Header.Set("X-Content-Sha256", sha256Hex([]byte("WRONG")))
		path := req.URL.EscapedPath()
		sig := signHMAC(http.MethodPost, path, ts, []byte("WRONG"), secretHex)
		req.Header.Set("Authorization", "HMAC "+sig)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeRejected))
		Expect(*out.Message()).To(Equal("body hash mismatch"))
	})

	It("accepts empty body when its SHA-256 is the empty-body digest", func() {
		ts := time.Now().UTC().Format(time.RFC3339)
		req := newHmacSignedRequest(http.MethodGet, "http://example.test/api/crypto/secret", nil, apiKeyID, secretHex, ts)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.IsAuthenticated()).To(BeTrue())
	})
})

var _ = Describe("HMACScheme body limit", func() {
	It("rejects signed bodies larger than the configured limit", func() {
		scheme, err := security.NewHMACScheme(config.HMACConfig{
			WindowSeconds: 300,
			MaxBodyBytes:  16,
			AccessKeys:    map[string]string{apiKeyID: secretHex},
		})
		Expect(err).NotTo(HaveOccurred())
		ts := time.Now().UTC().Format(time.RFC3339)
		body := bytes.Repeat([]byte("x"), 17)
		req := newHmacSignedRequest(http.MethodPost, "http://example.test/api/crypto/digest", body, apiKeyID, secretHex, ts)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(ports.OutcomeRejected))
		Expect(*out.Message()).To(ContainSubstring("body read error"))
	})

	It("accepts a body exactly at the limit", func() {
		scheme, err := security.NewHMACScheme(config.HMACConfig{
			WindowSeconds: 300,
			MaxBodyBytes:  16,
			AccessKeys:    map[string]string{apiKeyID: secretHex},
		})
		Expect(err).NotTo(HaveOccurred())
		ts := time.Now().UTC().Format(time.RFC3339)
		body := bytes.Repeat([]byte("x"), 16)
		req := newHmacSignedRequest(http.MethodPost, "http://example.test/api/crypto/digest", body, apiKeyID, secretHex, ts)

		out, err := scheme.Authenticate(httptest.NewRecorder(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.IsAuthenticated()).To(BeTrue())
	})
})

var _ = Describe("NewHMACScheme", func() {
	It("refuses secrets that are not hex", func() {
		_, err := security.NewHMACScheme(config.HMACConfig{AccessKeys: map[string]string{"k": "zz"}})
		Expect(err).To(MatchError(ports.ErrInvalidStrategyConfig))
	})

	It("refuses empty secrets", func() {
		_, err := security.NewHMACScheme(config.HMACConfig{AccessKeys: map[string]string{"k": " "}})
		Expect(err).To(MatchError(ports.ErrInvalidStrategyConfig))
	})
})
