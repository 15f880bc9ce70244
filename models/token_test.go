package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken - хелпер для выпуска подписанного токена с нужными claims
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestParseTokenInfo_RegisteredClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tokenString := signedToken(t, jwt.MapClaims{
		"sub": "+998901234567",
		"exp": exp.Unix(),
	})

	info, err := ParseTokenInfo(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "+998901234567", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestParseTokenInfo_MissingClaims(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"role": "admin"})

	info, err := ParseTokenInfo(tokenString)

	require.NoError(t, err)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
}

// Подпись не проверяется: ключа у клиента нет
func TestParseTokenInfo_IgnoresSignature(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"sub": "user-1"})
	tampered := tokenString[:len(tokenString)-2] + "xx"

	info, err := ParseTokenInfo(tampered)

	require.NoError(t, err)
	assert.Equal(t, "user-1", info.Subject)
}

func TestParseTokenInfo_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "opaque-session-id"},
		{name: "two segments", token: "aaa.bbb"},
		{name: "garbage base64", token: "!!!.???.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenInfo(tt.token)
			assert.Error(t, err)
		})
	}
}
