package handlers

import (
	"github.com/akshatmoradiya03/HealthCare/internal/services"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user listing routes
type UserHandler struct {
	DB *gorm.DB
}

// ListUsers handles GET /api/users?role=
// @Summary List users
// @Description List users, optionally filtered by role
// @Tags Users
// @Produce json
// @Param role query string false "Filter by role (professional or client)"
// @Success 200 {array} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB, c.Query("role"))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, users, fiber.StatusOK)
}
