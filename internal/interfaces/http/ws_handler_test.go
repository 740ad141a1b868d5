package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	apphttp "github.com/TanmayElinje/inventory-pro/internal/interfaces/http"
	pkgjwt "github.com/TanmayElinje/inventory-pro/pkg/jwt"
)

// buildWSApp mounts WSUpgrade in front of a marker handler so the gate can
// be exercised without completing a websocket handshake.
func buildWSApp() *fiber.App {
	app := fiber.New()
	app.Get("/ws/products", apphttp.WSUpgrade(testJWTSecret), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString(apphttp.GetUserID(c))
	})
	return app
}

func doWSRequest(t *testing.T, app *fiber.App, token string, upgrade bool) *http.Response {
	t.Helper()
	target := "/ws/products"
	if token != "" {
		target += "?token=" + token
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if upgrade {
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		req.Header.Set("Sec-WebSocket-Version", "13")
		req.Header.Set("Sec-WebSocket-Key", "x3JJHMbDL1EzLkh9GBhXDw==")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func wsToken(t *testing.T, secret string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, testUsername, entity.RoleStaff, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func TestWSUpgrade_RequiresUpgradeHeaders(t *testing.T) {
	app := buildWSApp()
	resp := doWSRequest(t, app, wsToken(t, testJWTSecret), false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestWSUpgrade_MissingTokenRejected(t *testing.T) {
	app := buildWSApp()
	resp := doWSRequest(t, app, "", true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSUpgrade_GarbageTokenRejected(t *testing.T) {
	app := buildWSApp()
	resp := doWSRequest(t, app, "not-a-jwt", true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSUpgrade_WrongSecretRejected(t *testing.T) {
	app := buildWSApp()
	resp := doWSRequest(t, app, wsToken(t, "another-secret"), true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSUpgrade_ValidTokenPassesGate(t *testing.T) {
	app := buildWSApp()
	resp := doWSRequest(t, app, wsToken(t, testJWTSecret), true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, testUserID, string(body))
}
