package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bookshelf/internal/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.Issue(userID, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	issued := claims.IssuedAt.Time
	expires := claims.ExpiresAt.Time
	assert.WithinDuration(t, issued.Add(TokenExpiry), expires, time.Second)
}

func TestJWTService_Verify_Failures(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	expired := signedToken(t, "test-secret", userID, time.Now().Add(-2*time.Hour))
	forged := signedToken(t, "other-secret", userID, time.Now().Add(time.Hour))

	tests := []struct {
		name          string
		token         string
		expectedError error
	}{
		{
			name:          "empty token",
			token:         "",
			expectedError: apperrors.ErrTokenMissing,
		},
		{
			name:          "garbage token",
			token:         "not.a.jwt",
			expectedError: apperrors.ErrTokenMalformed,
		},
		{
			name:          "expired token",
			token:         expired,
			expectedError: apperrors.ErrTokenExpired,
		},
		{
			name:          "wrong signing key",
			token:         forged,
			expectedError: apperrors.ErrTokenSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestJWTService_Verify_RejectsNonHMAC(t *testing.T) {
	service := NewJWTService("test-secret")

	// alg "none" must never be accepted
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: uuid.New(),
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := service.Verify(signed)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func signedToken(t *testing.T, secret string, userID uuid.UUID, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-TokenExpiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
