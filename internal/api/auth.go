package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/baxromumarov/job-board/internal/observability"
)

type tokenSet [][]byte

func newTokenSet(tokens []string) tokenSet {
	var ts tokenSet
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			ts = append(ts, []byte(t))
		}
	}
	return ts
}

func (ts tokenSet) valid(token string) bool {
	ok := 0
	for _, t := range ts {
		ok |= subtle.ConstantTimeCompare(t, []byte(token))
	}
	return ok == 1
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			respondError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}
		if !s.tokens.valid(token) {
			observability.IncError(observability.ErrorAuth, "api")
			w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
			respondError(w, http.StatusUnauthorized, "Request is not authorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
