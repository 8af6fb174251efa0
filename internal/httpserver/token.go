// apps/go-solver/internal/httpserver/token.go
//
// Session tokens.
// A client never sees the raw session ID; it gets an HS256 JWT whose subject
// is the ID. Tokens expire after the configured TTL, after which the session
// is unreachable even if it is still in the store.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrBadToken = errors.New("invalid session token")

// signToken creates a token for session id.
func (s *Server) signToken(id string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
	})
	return t.SignedString(s.opts.Secret)
}

// parseToken validates tok and returns the session id it carries.
func (s *Server) parseToken(tok string) (string, error) {
	if tok == "" {
		return "", ErrBadToken
	}
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid || claims.Subject == "" {
		return "", ErrBadToken
	}
	return claims.Subject, nil
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
