// Package auth guards the admin API with a bearer token. There are no
// accounts or sessions; the token is handed to the operator at startup.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
)

// Auth handles admin authentication
type Auth struct {
	token string
}

// New creates a new Auth instance with the given token
func New(token string) *Auth {
	return &Auth{token: token}
}

// GenerateToken creates a random hex token for operators who did not
// configure one.
func GenerateToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// tokenFromRequest extracts the bearer token from the Authorization
// header, or the X-Admin-Token header as a fallback for curl scripts.
func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.Header.Get("X-Admin-Token")
}

// Validate checks a presented token in constant time.
func (a *Auth) Validate(token string) bool {
	if a.token == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.token), []byte(token)) == 1
}

// RequireAuthAPI middleware for admin API endpoints (returns 401)
func (a *Auth) RequireAuthAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.Validate(tokenFromRequest(r)) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - admin token required"}`))
	})
}
