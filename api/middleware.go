package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SabbirRshuvo/Volunteer-management-server/config"
	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

// SessionCookieName is the cookie the signed session token travels in
const SessionCookieName = "token"

// sessionTTL matches the 365-day expiry the frontend expects
const sessionTTL = 365 * 24 * time.Hour

type contextKey string

const sessionEmailKey contextKey = "sessionEmail"

// Session signs, verifies and wraps session tokens in cookies
type Session struct {
	secret      []byte
	environment string
}

// NewSession builds a Session from the config values
func NewSession(conf *config.Config) *Session {
	return &Session{
		secret:      []byte(conf.SecretKey),
		environment: conf.Environment,
	}
}

// IssueToken signs a session token for the given email
func (s *Session) IssueToken(email string) (string, error) {
	now := time.Now()
	claims := models.SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken checks signature and expiry and returns the decoded claims
func (s *Session) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Cookie wraps a signed token in the http-only session cookie
func (s *Session) Cookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(sessionTTL),
		SameSite: http.SameSiteStrictMode,
	}
	if s.environment == "production" {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// ExpiredCookie returns a cookie that clears the session immediately
func (s *Session) ExpiredCookie() *http.Cookie {
	c := s.Cookie("")
	c.Expires = time.Unix(0, 0)
	c.MaxAge = -1
	return c
}

// Middleware rejects requests without a valid session cookie and stores the
// verified email in the request context. Verification failure always
// short-circuits, the downstream handler never sees a half-trusted identity.
func (s *Session) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			config.Message("unauthorized access", http.StatusUnauthorized, w)
			return
		}
		claims, err := s.VerifyToken(cookie.Value)
		if err != nil {
			zap.S().Errorw("session verification failed",
				"url", r.URL,
				"error", err)
			config.Message("unauthorized access", http.StatusUnauthorized, w)
			return
		}
		next.ServeHTTP(w, r.WithContext(SetSessionEmail(r.Context(), claims.Email)))
	})
}

// SetSessionEmail saves the verified session email in the request context
func SetSessionEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, sessionEmailKey, email)
}

// SessionEmailFromContext retrieves the verified session email
func SessionEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(sessionEmailKey).(string)
	return email, ok
}
