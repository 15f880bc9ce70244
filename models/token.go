package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is the client-side view of the stored bearer credential.
// The client never verifies the signature (it has no key); it only
// inspects the registered claims for display purposes, e.g. showing the
// expiry on the profile screen.
type TokenInfo struct {
	// Subject is the "sub" claim, the account identifier.
	Subject string

	// ExpiresAt is the "exp" claim, zero when the token carries none.
	ExpiresAt time.Time
}

// ParseTokenInfo extracts the registered claims from a compact JWT
// without verifying its signature. Returns an error if the string is not
// a structurally valid JWT.
func ParseTokenInfo(tokenString string) (TokenInfo, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}, err
	}

	var info TokenInfo
	if sub, err := token.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}
