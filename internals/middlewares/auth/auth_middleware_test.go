package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmart_backend/internals/configs"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/u/me", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func testClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "b7f8c7e2-4a1d-4a5e-9c3f-2a6d8e1f0b43",
		"email":   "karim@example.com",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddlewareAcceptsHS256(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, testClaims()).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/u/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsNonHMACAlg(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	// alg=none must never reach signature verification with the HMAC key
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims()).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/u/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, testClaims()).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/u/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
