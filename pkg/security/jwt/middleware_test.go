package jwt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(OwnerKey).(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp.StatusCode, body.Error
	}
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestAuthMiddleware(t *testing.T) {
	gen := NewGenerator("secret", "resumescan", time.Hour)
	token, err := gen.Generate(context.Background(), "alice")
	require.NoError(t, err)

	app := newApp("secret", "resumescan")

	status, body := call(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body)

	status, body = call(t, app, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body)

	status, body = call(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "missing Authorization header", body)

	status, body = call(t, app, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid or expired token", body)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	other, err := NewGenerator("other-secret", "resumescan", time.Hour).Generate(context.Background(), "bob")
	require.NoError(t, err)
	expired, err := NewGenerator("secret", "resumescan", -time.Minute).Generate(context.Background(), "bob")
	require.NoError(t, err)
	foreign, err := NewGenerator("secret", "someone-else", time.Hour).Generate(context.Background(), "bob")
	require.NoError(t, err)

	app := newApp("secret", "resumescan")
	for name, tok := range map[string]string{"wrong secret": other, "expired": expired, "wrong issuer": foreign} {
		t.Run(name, func(t *testing.T) {
			status, _ := call(t, app, "Bearer "+tok)
			assert.Equal(t, http.StatusUnauthorized, status)
		})
	}
}

func TestGenerateRequiresSubject(t *testing.T) {
	_, err := NewGenerator("secret", "", time.Hour).Generate(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptySubject)
}
