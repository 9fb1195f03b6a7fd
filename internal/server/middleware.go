package server

import (
	"context"
	"net/http"
	"strings"

	"household-hub/internal/household"
)

type contextKey string

const sessionKey contextKey = "session"

// requireAuth validates the Bearer token and stores the session claims in
// the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := s.tokens.Parse(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the authenticated session claims. Only meaningful on
// routes behind requireAuth.
func sessionFrom(r *http.Request) household.SessionClaims {
	claims, _ := r.Context().Value(sessionKey).(household.SessionClaims)
	return claims
}
