package handlers

import (
	"github.com/akshatmoradiya03/HealthCare/internal/middleware"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/gofiber/fiber/v2"
)

// CurrentUserID returns the authenticated user's id stored by the auth
// middleware. Zero means the route was not behind AuthRequired.
func CurrentUserID(c *fiber.Ctx) uint64 {
	id, _ := c.Locals(middleware.LocalUserID).(uint64)
	return id
}

// CurrentRole returns the authenticated user's role stored by the auth
// middleware.
func CurrentRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(middleware.LocalRole).(models.Role)
	return role
}
