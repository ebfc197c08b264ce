package rest

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi" // generated
	"bearer-auth-api/internal/app/ports"
	"net/http"
)

func (s *DefaultRestServer) ListTokens(w http.ResponseWriter, r *http.Request) {
	list, err := s.apis.ListTokens(r.Context())
	if err != nil {
		writeApiError(w, err)
		return
	}
	out := openapi.ListTokensResponseBody{Tokens: make([]openapi.Token, 0, len(list))}
	for _, t := range list {
		out.Tokens = append(out.Tokens, toToken(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *DefaultRestServer) IssueToken(w http.ResponseWriter, r *http.Request) {
	var in openapi.IssueTokenRequestBody
	if !decodeJSON(w, r, &in) {
		return
	}
	info := ports.TokenInfo{
		Description: in.Description,
		Expiration:  in.Expiration,
	}
	if in.Id != nil {
		info.ID = *in.Id
	}
	if in.Principal != nil {
		info.Principal = *in.Principal
	}
	if in.Scopes != nil {
		info.Scopes = *in.Scopes
	}
	if in.Entities != nil {
		info.Entities = *in.Entities
	}
	plaintext, stored, err := s.apis.IssueToken(r.Context(), info)
	if err != nil {
		writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, openapi.IssueTokenResponseBody{
		Token: plaintext,
		Info:  toToken(stored),
	})
}

func (s *DefaultRestServer) DescribeToken(w http.ResponseWriter, r *http.Request) {
	var in openapi.DescribeTokenRequestBody
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Token == "" {
		writeError(w, http.StatusBadRequest, "empty token")
		return
	}
	info, err := s.apis.DescribeToken(r.Context(), in.Token)
	if err != nil {
		writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toToken(info))
}

func (s *DefaultRestServer) RevokeToken(w http.ResponseWriter, r *http.Request, digest openapi.DigestParam) {
	if err := s.apis.RevokeToken(r.Context(), digest); err != nil {
		writeApiError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetTokenDisabled blocks or unblocks a token; validators drop their cached
// result for it.
func (s *DefaultRestServer) SetTokenDisabled(w http.ResponseWriter, r *http.Request, digest openapi.DigestParam) {
	var in openapi.SetTokenDisabledRequestBody
	if !decodeJSON(w, r, &in) {
		return
	}
	info, err := s.apis.SetTokenDisabled(r.Context(), digest, in.Disabled)
	if err != nil {
		writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toToken(info))
}

func toToken(t ports.TokenInfo) openapi.Token {
	out := openapi.Token{
		Id:          t.ID,
		Digest:      t.Digest,
		Principal:   t.Principal,
		Description: t.Description,
		Expiration:  t.Expiration,
		Disabled:    t.Disabled,
	}
	if len(t.Scopes) > 0 {
		out.Scopes = ptr(t.Scopes)
	}
	if len(t.Entities) > 0 {
		out.Entities = ptr(t.Entities)
	}
	return out
}
