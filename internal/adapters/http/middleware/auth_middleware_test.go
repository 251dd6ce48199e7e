package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"phonestore-api/internal/config"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guardTestSecret = "guard-test-secret"

func guardTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{JWT: config.JWTConfig{Secret: guardTestSecret, TokenHours: 1}}

	app := fiber.New()
	app.Use(Guard(cfg))

	app.Get("/open", func(c *fiber.Ctx) error {
		if p := Principal(c); p != nil {
			return c.SendString("hello " + p.Username)
		}
		return c.SendString("hello anonymous")
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("private")
	})
	app.Get("/admin", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("admin")
	})

	return app
}

func issueTestToken(t *testing.T, username string, role domain.Role, ttlHours int) string {
	t.Helper()

	token, err := jwt.Issue(uuid.New(), username, role, guardTestSecret, ttlHours)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGuardAnonymousPassesThrough(t *testing.T) {
	app := guardTestApp(t)

	resp := doRequest(t, app, "/open", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardValidTokenPublishesPrincipal(t *testing.T) {
	app := guardTestApp(t)
	token := issueTestToken(t, "alice", domain.RoleUser, 1)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello alice", string(body))
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	app := guardTestApp(t)
	token := issueTestToken(t, "alice", domain.RoleUser, -1)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuardRejectsMalformedToken(t *testing.T) {
	app := guardTestApp(t)

	resp := doRequest(t, app, "/open", "Bearer not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuardRejectsWrongScheme(t *testing.T) {
	app := guardTestApp(t)
	token := issueTestToken(t, "alice", domain.RoleUser, 1)

	resp := doRequest(t, app, "/open", "Basic "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuardRejectsForeignSignature(t *testing.T) {
	app := guardTestApp(t)

	token, err := jwt.Issue(uuid.New(), "alice", domain.RoleUser, "other-secret", 1)
	require.NoError(t, err)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth(t *testing.T) {
	app := guardTestApp(t)

	resp := doRequest(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := issueTestToken(t, "alice", domain.RoleUser, 1)
	resp = doRequest(t, app, "/private", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app := guardTestApp(t)

	// Anonymous
	resp := doRequest(t, app, "/admin", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Authenticated but not admin
	userToken := issueTestToken(t, "alice", domain.RoleUser, 1)
	resp = doRequest(t, app, "/admin", "Bearer "+userToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Admin
	adminToken := issueTestToken(t, "root", domain.RoleAdmin, 1)
	resp = doRequest(t, app, "/admin", "Bearer "+adminToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
