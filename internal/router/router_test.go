package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/auth"
)

func protectedEcho(jwtService *auth.JWTService) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		claims := auth.FromContext(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "claims missing")
		}
		return c.JSON(http.StatusOK, map[string]string{"email": claims.Email})
	}, AuthGate(jwtService))
	return e
}

func craftToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: uuid.New(),
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthGate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	e := protectedEcho(jwtService)

	valid, err := jwtService.Issue(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "valid token",
			header:       "Bearer " + valid,
			expectedCode: http.StatusOK,
			expectedBody: "alice@example.com",
		},
		{
			name:         "no header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
			expectedBody: "TOKEN_MISSING",
		},
		{
			name:         "wrong scheme",
			header:       "Token " + valid,
			expectedCode: http.StatusUnauthorized,
			expectedBody: "AUTH_HEADER_MALFORMED",
		},
		{
			name:         "garbage token",
			header:       "Bearer not.a.jwt",
			expectedCode: http.StatusUnauthorized,
			expectedBody: "TOKEN_MALFORMED",
		},
		{
			name:         "expired token",
			header:       "Bearer " + craftToken(t, "test-secret", time.Now().Add(-time.Hour)),
			expectedCode: http.StatusUnauthorized,
			expectedBody: "TOKEN_EXPIRED",
		},
		{
			name:         "forged signature",
			header:       "Bearer " + craftToken(t, "other-secret", time.Now().Add(time.Hour)),
			expectedCode: http.StatusUnauthorized,
			expectedBody: "TOKEN_INVALID_SIGNATURE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
