package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/middleware"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/services"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTIssuer: "healthcare-api",
		TokenTTL:  time.Hour,
	}
}

// newProtectedApp returns an app with one authenticated route that echoes
// the claims from context, plus one professional-only route.
func newProtectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	authed := app.Group("/", middleware.AuthRequired(cfg))
	authed.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(middleware.LocalUserID),
			"role":    c.Locals(middleware.LocalRole),
		})
	})
	authed.Get("/pro-only", middleware.RequireRole(models.RoleProfessional), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	return app
}

func get(t *testing.T, app *fiber.App, path, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func issueToken(t *testing.T, cfg *config.Config, userID uint64, role models.Role) string {
	t.Helper()
	token, err := services.IssueToken(cfg, &models.User{ID: userID, Role: role})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	app := newProtectedApp(testConfig())

	resp := get(t, app, "/whoami", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 without header, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	app := newProtectedApp(testConfig())

	for _, header := range []string{
		"Basic dXNlcjpwYXNz",
		"Bearer",
		"token-without-scheme",
	} {
		resp := get(t, app, "/whoami", header)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(cfg)

	other := testConfig()
	other.JWTSecret = "different-secret"
	token := issueToken(t, other, 7, models.RoleClient)

	resp := get(t, app, "/whoami", "Bearer "+token)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 for wrong secret, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredPopulatesClaims(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(cfg)
	token := issueToken(t, cfg, 42, models.RoleProfessional)

	resp := get(t, app, "/whoami", "Bearer "+token)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 with valid token, got %d", resp.StatusCode)
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(cfg)

	clientToken := issueToken(t, cfg, 1, models.RoleClient)
	proToken := issueToken(t, cfg, 2, models.RoleProfessional)

	resp := get(t, app, "/pro-only", "Bearer "+clientToken)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected 403 for client on pro route, got %d", resp.StatusCode)
	}

	resp = get(t, app, "/pro-only", "Bearer "+proToken)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected 204 for professional, got %d", resp.StatusCode)
	}
}
