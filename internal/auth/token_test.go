package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/auth"
	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16-chars"

func TestTokenManager_SignVerify(t *testing.T) {
	manager := auth.NewTokenManager(testSecret, time.Hour)

	token, err := manager.Sign("user-42", entities.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, entities.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestTokenManager_Verify_Failures(t *testing.T) {
	manager := auth.NewTokenManager(testSecret, time.Hour)

	signWith := func(t *testing.T, secret string, ttl time.Duration, subject, role string) string {
		t.Helper()
		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  subject,
			"role": role,
			"iat":  jwt.NewNumericDate(now),
			"exp":  jwt.NewNumericDate(now.Add(ttl)),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return signed
	}

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: signWith(t, "another-secret-16-chars!", time.Hour, "user-1", "user")},
		{name: "expired", token: signWith(t, testSecret, -time.Minute, "user-1", "user")},
		{name: "missing subject", token: signWith(t, testSecret, time.Hour, "", "user")},
		{name: "unknown role", token: signWith(t, testSecret, time.Hour, "user-1", "superuser")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manager.Verify(tc.token)
			assert.ErrorIs(t, err, auth.ErrUnauthenticated)
		})
	}
}

func TestTokenManager_Verify_RejectsUnsignedAlg(t *testing.T) {
	manager := auth.NewTokenManager(testSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestIdentityContext(t *testing.T) {
	identity := auth.Identity{UserID: "user-7", Role: entities.RoleUser}

	ctx := auth.WithIdentity(context.Background(), identity)
	got, ok := auth.ExtractIdentity(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	_, ok = auth.ExtractIdentity(context.Background())
	assert.False(t, ok)
}
