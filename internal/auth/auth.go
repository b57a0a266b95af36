// Package auth gates the hosted variant behind a single configured
// credential pair and signed session tokens. Verification failures are
// explicit: an invalid or expired token never falls through to a logged-in
// session.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the signed token for web UI requests.
	SessionCookie = "pharmadash_session"

	sessionTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// Sessions issues and verifies signed session tokens.
type Sessions struct {
	secret   []byte
	username string
	password string
}

func NewSessions(secret, username, password string) *Sessions {
	return &Sessions{
		secret:   []byte(secret),
		username: username,
		password: password,
	}
}

// Authenticate checks a submitted credential pair against the configured one.
func (s *Sessions) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}

// IssueToken creates a signed session token for the given user.
func (s *Sessions) IssueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the subject.
func (s *Sessions) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// RequestUser extracts and verifies the session token from the request
// cookie, returning the logged-in username.
func (s *Sessions) RequestUser(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", ErrInvalidToken
	}
	return s.VerifyToken(cookie.Value)
}

// SetSessionCookie attaches a freshly issued token to the response.
func (s *Sessions) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie on logout.
func (s *Sessions) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// RequireWeb redirects requests without a valid session to the login page.
func (s *Sessions) RequireWeb(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.RequestUser(r); err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
