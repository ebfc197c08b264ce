package security_test

import (
	"bearer-auth-api/internal/adapters/out/metrics"
	"bearer-auth-api/internal/adapters/out/security"
	"bearer-auth-api/internal/app/ports"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var fixedTokens = ports.ValidatorFunc(func(_ context.Context, _ http.ResponseWriter, _ *http.Request, token string, _ *string) (ports.ValidationResult, error) {
	switch token {
	case "good":
		return ports.ValidationResult{IsValid: true, Credentials: ports.Credentials{"id": "u1"}}, nil
	case "blocked":
		return ports.ValidationResult{IsBlocked: true}, nil
	case "broken":
		return ports.ValidationResult{IsValid: true}, nil
	case "boom":
		return ports.ValidationResult{}, errors.New("store unavailable")
	default:
		return ports.ValidationResult{}, nil
	}
})

func newBearerRequest(method, url, token string) *http.Request {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeAuthError(rr *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
	return body
}

var _ = Describe("NewStrategyChain", func() {
	It("refuses an empty strategy list", func() {
		_, err := security.NewStrategyChain("api", ports.AuthModeRequired, nil)
		Expect(err).To(MatchError(ports.ErrInvalidStrategyConfig))
	})

	It("refuses the same strategy twice", func() {
		hmacScheme := newTestHMACScheme()
		_, err := security.NewStrategyChain("api", ports.AuthModeRequired, nil, hmacScheme, hmacScheme)
		Expect(err).To(MatchError(ports.ErrInvalidStrategyConfig))
	})
})

var _ = Describe("StrategyChain.WithAuthChi middleware", func() {
	var (
		recorder  *metrics.FakeActionMetrics
		router    *chi.Mux
		principal *ports.Principal
		nextCalls int
	)

	mount := func(mode ports.AuthMode, chaining bool) {
		opts := security.DefaultBearerOptions(fixedTokens)
		opts.AllowChaining = chaining
		bearer, err := security.NewBearerScheme(opts)
		Expect(err).NotTo(HaveOccurred())

		chain, err := security.NewStrategyChain("api", mode, recorder, bearer, newTestHMACScheme())
		Expect(err).NotTo(HaveOccurred())
		Expect(chain.Strategies()).To(Equal([]string{"bearer", "hmac"}))

		router = chi.NewRouter()
		protected := chi.NewRouter()
		protected.Use(chain.WithAuthChi)
		protected.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			nextCalls++
			principal = ports.PrincipalFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		router.Mount("/", protected)
	}

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	BeforeEach(func() {
		recorder = &metrics.FakeActionMetrics{}
		principal = nil
		nextCalls = 0
	})

	Context("in required mode", func() {
		BeforeEach(func() {
			mount(ports.AuthModeRequired, true)
		})

		It("authenticates with the first strategy and stops", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "good"))

			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(principal).NotTo(BeNil())
			Expect(principal.Strategy).To(Equal("bearer"))
			Expect(principal.Credentials).To(HaveKeyWithValue("id", "u1"))
			Expect(recorder.Results()).To(Equal([]string{"authenticated"}))
		})

		It("falls through to the next strategy when no bearer token is present", func() {
			ts := time.Now().UTC().Format(time.RFC3339)
			rr := serve(newHmacSignedRequest(http.MethodGet, "http://example.test/protected", nil, apiKeyID, secretHex, ts))

			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(principal.Strategy).To(Equal("hmac"))
			Expect(recorder.Results()).To(Equal([]string{"challenge", "authenticated"}))
		})

		It("answers 401 with every challenge when nothing is supplied", func() {
			req, _ := http.NewRequest(http.MethodGet, "http://example.test/protected", nil)
			rr := serve(req)

			Expect(rr.Code).To(Equal(http.StatusUnauthorized))
			Expect(rr.Header().Values("WWW-Authenticate")).To(Equal([]string{"Bearer", "HMAC"}))
			Expect(decodeAuthError(rr)).To(HaveKeyWithValue("message", "Missing authentication"))
			Expect(nextCalls).To(BeZero())
		})

		It("lets the next strategy try when the bad token reason is suppressed", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "unknown"))

			Expect(rr.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Results()).To(Equal([]string{"rejected", "challenge"}))
			Expect(decodeAuthError(rr)).To(HaveKeyWithValue("message", "Missing authentication"))
		})

		It("stops the chain on a blocked token", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "blocked"))

			Expect(rr.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Results()).To(Equal([]string{"rejected"}))
			Expect(decodeAuthError(rr)).To(HaveKeyWithValue("message", "Oops, Your account is blocked. Please contact your admin"))
			Expect(rr.Header().Get("WWW-Authenticate")).To(HavePrefix(`Bearer error="Oops`))
		})

		It("answers 500 on an implementation fault", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "broken"))

			Expect(rr.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Results()).To(Equal([]string{"fault"}))
			Expect(nextCalls).To(BeZero())
		})

		It("answers 500 when the validator fails", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "boom"))

			Expect(rr.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Results()).To(Equal([]string{"error"}))
		})
	})

	Context("without chaining", func() {
		BeforeEach(func() {
			mount(ports.AuthModeRequired, false)
		})

		It("stops at the first strategy with the bad token reason", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "unknown"))

			Expect(rr.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Results()).To(Equal([]string{"rejected"}))
			Expect(decodeAuthError(rr)).To(HaveKeyWithValue("message", "Bad token"))
		})
	})

	Context("in optional mode", func() {
		BeforeEach(func() {
			mount(ports.AuthModeOptional, false)
		})

		It("passes anonymous requests through", func() {
			req, _ := http.NewRequest(http.MethodGet, "http://example.test/protected", nil)
			rr := serve(req)

			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(principal).To(BeNil())
		})

		It("still refuses rejected credentials", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "unknown"))
			Expect(rr.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("in try mode", func() {
		BeforeEach(func() {
			mount(ports.AuthModeTry, false)
		})

		It("passes rejected credentials through without a principal", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "unknown"))

			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(principal).To(BeNil())
		})

		It("still attaches the principal on success", func() {
			rr := serve(newBearerRequest(http.MethodGet, "http://example.test/protected", "good"))

			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(principal).NotTo(BeNil())
		})
	})
})
