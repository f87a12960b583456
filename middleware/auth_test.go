package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"tcg-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier map[string]services.Identity

func (f fakeVerifier) Verify(token string) (services.Identity, error) {
	id, ok := f[token]
	if !ok {
		return services.Identity{}, services.ErrInvalidToken
	}
	return id, nil
}

func newProtectedApp(v services.TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireAuth(v), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return errors.New("identity missing")
		}
		return c.JSON(fiber.Map{"userId": id, "email": c.Locals(LocalEmail)})
	})
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestRequireAuth(t *testing.T) {
	app := newProtectedApp(fakeVerifier{"good": {UserID: 3, Email: "red@kanto"}})

	tests := []struct {
		name   string
		header string
		status int
		err    string
	}{
		{"no header", "", fiber.StatusUnauthorized, "No token provided"},
		{"scheme only", "Bearer", fiber.StatusUnauthorized, "No token provided"},
		{"bad token", "Bearer nope", fiber.StatusUnauthorized, "Invalid or expired token"},
		{"good token", "Bearer good", fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decodeBody(t, resp.Body)
			if tt.err != "" {
				assert.Equal(t, tt.err, body["error"])
				return
			}
			assert.EqualValues(t, 3, body["userId"])
			assert.Equal(t, "red@kanto", body["email"])
		})
	}
}

func TestServiceTokenMiddleware(t *testing.T) {
	app := fiber.New()
	app.Post("/ops", ServiceTokenMiddleware("s3cret"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	for header, want := range map[string]int{
		"":              fiber.StatusUnauthorized,
		"Bearer wrong":  fiber.StatusUnauthorized,
		"s3cret":        fiber.StatusUnauthorized,
		"Bearer s3cret": fiber.StatusNoContent,
	} {
		req := httptest.NewRequest("POST", "/ops", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "header=%q", header)
	}
}

func TestServiceTokenMiddlewareDisabledWhenUnset(t *testing.T) {
	app := fiber.New()
	app.Post("/ops", ServiceTokenMiddleware(""), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("POST", "/ops", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
