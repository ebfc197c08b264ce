package rest

import (
	"bearer-auth-api/internal/adapters/in/rest/openapi" // generated
	"bearer-auth-api/internal/app/ports"
	"encoding/hex"
	"fmt"
	"net/http"
)

func (s *DefaultRestServer) GenerateSecret(w http.ResponseWriter, _ *http.Request, params openapi.GenerateSecretParams) {
	size, secret, err := s.apis.GenerateSecret(params.Size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, openapi.GenerateSecretResponseBody{
		Hex:       hex.EncodeToString(secret),
		SizeBytes: size,
	})
}

func (s *DefaultRestServer) ComputeDigest(w http.ResponseWriter, r *http.Request) {
	var in openapi.ComputeDigestRequestBody
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Plaintext == nil {
		writeError(w, http.StatusBadRequest, "empty plaintext")
		return
	}

	var alg *ports.HashAlgo
	if in.Algorithm != nil {
		parsed, err := ports.ParseHashAlgo(string(*in.Algorithm))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid algorithm: '%s'", *in.Algorithm))
			return
		}
		alg = &parsed
	}

	digest, used, err := s.apis.ComputeDigest(*in.Plaintext, alg)
	if err != nil {
		writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, openapi.ComputeDigestResponseBody{
		Algorithm: openapi.HashAlgorithm(used),
		Digest:    digest,
	})
}

func (s *DefaultRestServer) VerifyDigest(w http.ResponseWriter, r *http.Request) {
	var in openapi.VerifyDigestRequestBody
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Plaintext == nil {
		writeError(w, http.StatusBadRequest, "empty plaintext")
		return
	}

	verified, algorithm, err := s.apis.VerifyDigest(in.Digest, *in.Plaintext)

	response := openapi.VerifyDigestResponseBody{
		Verified:          verified,
		DetectedAlgorithm: string(algorithm),
	}
	if err != nil {
		response.Error = ptr(err.Error())
	}
	writeJSON(w, http.StatusOK, response)
}
