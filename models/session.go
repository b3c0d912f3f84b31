package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by the session cookie token
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionPayload is the identity payload posted to the session issue route
type SessionPayload struct {
	Email string `json:"email"`
}
