package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"aperture/internal/auth"
	"aperture/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestApp(t *testing.T, tokens *auth.TokenIssuer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", AuthRequired(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userID")})
	})
	return app
}

func TestAuthRequiredMissingToken(t *testing.T) {
	app := authTestApp(t, auth.NewTokenIssuer("test-secret"))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Access denied", body.Error)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	app := authTestApp(t, auth.NewTokenIssuer("test-secret"))

	for _, header := range []string{"Bearer", "token-without-scheme", "Basic abc"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	app := authTestApp(t, auth.NewTokenIssuer("test-secret"))

	otherIssuer := auth.NewTokenIssuer("other-secret")
	token, err := otherIssuer.Issue(1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid token", body.Error)
}

func TestAuthRequiredValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret")
	app := authTestApp(t, tokens)

	token, err := tokens.Issue(7)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":7}`, string(raw))
}
