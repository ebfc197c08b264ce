package rest_test

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi"
	"bearer-auth-api/internal/adapters/out/metrics"
	"bearer-auth-api/internal/app"
	"bearer-auth-api/internal/app/config"
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T { return &v }

func sha256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

const secretHex = "77f280ba374a80132dfe7ddaba5af72476be5ba34477448fff901ebc804e4b1e"
const apiKeyID = "key1"
const securityWindowSeconds = 100

// tokens seeded by config.test.yml
const (
	aliceToken   = "alice-token-0001"
	blockedToken = "blocked-token-0002"
	expiredToken = "expired-token-0003"
	bobToken     = "bob-token-0004"
)

func mustStatus(code int, body []byte, allowed ...int) {
	for _, a := range allowed {
		if code == a {
			return
		}
	}
	Expect(code).To(BeElementOf(allowed), "status=%d body=%s", code, string(body))
}

func decodeError(body []byte) openapi.Error {
	var e openapi.Error
	Expect(json.Unmarshal(body, &e)).To(Succeed(), "body=%s", string(body))
	return e
}

// --- Seedable server ---

func newTestConfig(configPath string) *config.ProgramConfig {
	data, err := os.ReadFile(configPath)
	Expect(err).NotTo(HaveOccurred())

	cfg, err := config.LoadConfigString(string(data))
	Expect(err).NotTo(HaveOccurred())
	return cfg
}

func newTestServer(cfg *config.ProgramConfig) *httptest.Server {
	rs, err := app.BuildRestServer(cfg, true, &metrics.FakeActionMetrics{})
	Expect(err).NotTo(HaveOccurred())
	return httptest.NewServer(app.BuildRouter(cfg.HttpServer, rs))
}

func newTestServerFromConfig(configPath string) *httptest.Server {
	return newTestServer(newTestConfig(configPath))
}

func newClient(baseURL string, editors ...openapi.RequestEditorFn) *openapi.ClientWithResponses {
	opts := make([]openapi.ClientOption, 0, len(editors))
	for _, e := range editors {
		opts = append(opts, openapi.WithRequestEditorFn(e))
	}
	cli, err := openapi.NewClientWithResponses(baseURL, opts...)
	Expect(err).NotTo(HaveOccurred())
	return cli
}

func bearerEditor(token string) openapi.RequestEditorFn {
	return func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// hmacEditor signs the request the way HMAC API clients do; it must be the last editor.
func hmacEditor(keyID, secret string) openapi.RequestEditorFn {
	return func(_ context.Context, req *http.Request) error {
		var body []byte
		if req.Body != nil {
			b, _ := io.ReadAll(req.Body)
			body = b
			_ = req.Body.Close()
			req.Body = io.NopCloser(bytes.NewReader(b))
		}
		bodyHash := sha256Hex(body)
		ts := time.Now().UTC().Format(time.RFC3339)

		path := req.URL.EscapedPath()
		if q := req.URL.RawQuery; q != "" {
			path += "?" + q
		}
		msg := req.Method + "\n" + path + "\n" + ts + "\n" + bodyHash

		key, _ := hex.DecodeString(secret)
		m := hmac.New(sha256.New, key)
		_, _ = m.Write([]byte(msg))
		sig := hex.EncodeToString(m.Sum(nil))

		req.Header.Set("X-Api-Key", keyID)
		req.Header.Set("X-Timestamp", ts)
		req.Header.Set("X-Content-Sha256", bodyHash)
		req.Header.Set("Authorization", "HMAC "+sig)
		return nil
	}
}

// Bearer client
func newBearerClient(baseURL, token string) *openapi.ClientWithResponses {
	return newClient(baseURL, bearerEditor(token))
}

// Signed client
func newHmacClient(baseURL, apiKeyID, secretHex string) *openapi.ClientWithResponses {
	return newClient(baseURL, hmacEditor(apiKeyID, secretHex))
}

// getRaw fetches routes the generated client does not cover.
func getRaw(url string) (int, []byte) {
	res, err := http.Get(url)
	Expect(err).NotTo(HaveOccurred())
	defer func() { _ = res.Body.Close() }()
	b, err := io.ReadAll(res.Body)
	Expect(err).NotTo(HaveOccurred())
	return res.StatusCode, b
}
