package auth_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/server"
	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
)

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.JWTSecret = "test-secret"
	cfg.StaticDir = t.TempDir()
	return server.New(cfg, store.NewMemory(), storage.PlaceholderResolver{})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, header ...http.Header) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(header) > 0 {
		for k, vs := range header[0] {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestRegisterAndDuplicate(t *testing.T) {
	app := newTestApp(t, nil)

	payload := fiber.Map{"name": "A", "email": "a@x.com", "password": "p"}

	status, body := doJSON(t, app, http.MethodPost, "/api/register", payload)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Teacher registered!", body["message"])

	status, body = doJSON(t, app, http.MethodPost, "/api/register", payload)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{"name": "A"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "All fields are required", body["error"])
}

func TestLoginStripsPassword(t *testing.T) {
	app := newTestApp(t, nil)

	doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{"name": "A", "email": "a@x.com", "password": "p"})

	status, body := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{"email": "a@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, status)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "login response must carry a user object")
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "teacher", user["role"])
	assert.NotContains(t, user, "password")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t, nil)

	doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{"name": "A", "email": "a@x.com", "password": "p"})

	status, wrongPassword := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{"email": "a@x.com", "password": "nope"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Invalid credentials", wrongPassword["error"])

	status, unknownEmail := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{"email": "b@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, wrongPassword["error"], unknownEmail["error"])
}

func TestAdminLoginUnconfigured(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"email": "admin@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Admin login is not configured", body["error"])
}

func TestAdminEndpointsOpenWithoutConfiguredAdmin(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/reset-teacher-password",
		fiber.Map{"email": "ghost@x.com", "newPassword": "n"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Teacher not found", body["error"])
}

func TestAdminMiddlewareEnforcedWhenConfigured(t *testing.T) {
	cfg := &config.Config{AdminEmail: "admin@x.com", AdminPassword: "secret"}
	app := newTestApp(t, cfg)

	// No token.
	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/reset-teacher-password",
		fiber.Map{"email": "a@x.com", "newPassword": "n"})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Bad credentials do not yield a token.
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"email": "admin@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Invalid credentials", body["error"])

	// Good credentials do.
	status, body = doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"email": "admin@x.com", "password": "secret"})
	assert.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{"name": "A", "email": "a@x.com", "password": "old"})

	header := http.Header{"Authorization": []string{"Bearer " + token}}
	status, body = doJSON(t, app, http.MethodPost, "/api/admin/reset-teacher-password",
		fiber.Map{"email": "a@x.com", "newPassword": "new"}, header)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Password reset successfully", body["message"])

	// The reset must actually have landed.
	status, body = doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{"email": "a@x.com", "password": "new"})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "user")
}

func TestAdminMiddlewareRejectsNonHMACToken(t *testing.T) {
	cfg := &config.Config{AdminEmail: "admin@x.com", AdminPassword: "secret"}
	app := newTestApp(t, cfg)

	// A well-formed token signed with a different algorithm must not get
	// past the middleware, whatever key it was signed with.
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "trio-homework-app",
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	header := http.Header{"Authorization": []string{"Bearer " + signed}}
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/reset-teacher-password",
		fiber.Map{"email": "a@x.com", "newPassword": "n"}, header)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body["error"])
}
