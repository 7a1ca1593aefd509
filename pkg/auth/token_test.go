package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmadesk/pharmadesk/pkg/auth"
)

func TestInspectToken(t *testing.T) {
	iat := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	exp := iat.Add(24 * time.Hour)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1",
		"iat": iat.Unix(),
		"exp": exp.Unix(),
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	info, err := auth.InspectToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", info.Subject)
	assert.True(t, info.IssuedAt.Equal(iat))
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestInspectTokenMissingClaims(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{}).
		SignedString([]byte("x"))
	require.NoError(t, err)

	info, err := auth.InspectToken(raw)
	require.NoError(t, err)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
}

func TestInspectTokenGarbage(t *testing.T) {
	_, err := auth.InspectToken("not.a.jwt")
	assert.Error(t, err)

	_, err = auth.InspectToken("")
	assert.Error(t, err)
}
