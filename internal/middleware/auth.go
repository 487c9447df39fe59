package middleware

import (
	"fmt"
	"strings"

	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/services"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"github.com/gofiber/fiber/v2"
)

// Context local keys populated by AuthRequired.
const (
	LocalUserID = "userID"
	LocalRole   = "role"
)

// AuthRequired validates the bearer token and stores the identity claims in
// the request context.
func AuthRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return types.NewAuthError("Authorization header not found", "auth.token.missing")
		}
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return types.NewAuthError("Authorization header is not a bearer token", "auth.token.malformed")
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := services.ParseToken(cfg, token)
		if err != nil {
			return types.NewAuthError(fmt.Sprintf("Invalid token: %v", err), "auth.token.invalid")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireRole gates a route to one role. Must run after AuthRequired.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals(LocalRole).(models.Role)
		if !ok {
			return types.NewAuthError("Not authenticated", "auth.token.missing")
		}
		if current != role {
			return types.NewForbiddenError(
				fmt.Sprintf("Requires role %q", role), "authorization.role")
		}
		return c.Next()
	}
}
