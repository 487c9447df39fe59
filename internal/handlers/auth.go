package handlers

import (
	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/services"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles the public signup/login routes
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Signup handles POST /api/auth/signup
// @Summary Register a new user
// @Description Create a professional or client account and issue a token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, token, err := services.Signup(h.DB, h.Cfg, services.SignupInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     models.Role(body.Role),
	})
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	}, fiber.StatusCreated)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and issue a token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, token, err := services.Login(h.DB, h.Cfg, body.Email, body.Password)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	}, fiber.StatusOK)
}
