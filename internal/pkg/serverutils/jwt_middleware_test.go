package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func ownerStatusFor(t *testing.T, authHeader string) int {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", OwnerMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestOwnerMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid owner token", func(t *testing.T) {
		token := signToken(t, "test-secret", "owner", time.Hour)
		assert.Equal(t, http.StatusOK, ownerStatusFor(t, "Bearer "+token))
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, ownerStatusFor(t, ""))
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, ownerStatusFor(t, "Token abc"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "another-secret", "owner", time.Hour)
		assert.Equal(t, http.StatusUnauthorized, ownerStatusFor(t, "Bearer "+token))
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, "test-secret", "owner", -time.Hour)
		assert.Equal(t, http.StatusUnauthorized, ownerStatusFor(t, "Bearer "+token))
	})

	t.Run("non-owner role", func(t *testing.T) {
		token := signToken(t, "test-secret", "guest", time.Hour)
		assert.Equal(t, http.StatusForbidden, ownerStatusFor(t, "Bearer "+token))
	})
}
