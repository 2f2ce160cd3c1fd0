package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahotsav_backend/internals/configs"
)

func withSecret(t *testing.T, s string) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = s
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestAdminTokenRoundTrip(t *testing.T) {
	withSecret(t, "test-secret")

	id := uuid.New()
	token, err := GenerateAdminToken(id, "sports", "core")
	require.NoError(t, err)

	claims, err := ParseClaims(token)
	require.NoError(t, err)

	subject, err := SubjectID(claims)
	require.NoError(t, err)
	assert.Equal(t, id, subject)
	assert.Equal(t, "sports", AdminIDClaim(claims))
	assert.Equal(t, "core", RoleClaim(claims))
}

func TestUserTokenHasNoAdminClaims(t *testing.T) {
	withSecret(t, "test-secret")

	id := uuid.New()
	token, err := GenerateUserToken(id)
	require.NoError(t, err)

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Empty(t, AdminIDClaim(claims))
	assert.Empty(t, RoleClaim(claims))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	withSecret(t, "first-secret")
	token, err := GenerateUserToken(uuid.New())
	require.NoError(t, err)

	configs.JWTSecret = "second-secret"
	_, err = ParseClaims(token)
	assert.Error(t, err)
}

func TestSignFailsWithoutSecret(t *testing.T) {
	withSecret(t, "")
	_, err := GenerateUserToken(uuid.New())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestClaimExpiry(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	claims := BuildUserClaims(uuid.New(), now)
	assert.Equal(t, now.Add(TokenTTL).Unix(), claims["exp"])
}
