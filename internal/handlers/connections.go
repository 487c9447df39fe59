package handlers

import (
	"fmt"
	"strconv"

	"github.com/akshatmoradiya03/HealthCare/internal/services"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ConnectionHandler handles the professional-client connection routes
type ConnectionHandler struct {
	DB *gorm.DB
}

// RequestProfessional handles POST /api/connection/request-pro
// @Summary Request a professional
// @Description Client requests a connection with a professional
// @Tags Connections
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /connection/request-pro [post]
func (h *ConnectionHandler) RequestProfessional(c *fiber.Ctx) error {
	var body struct {
		ProfessionalID types.FlexUint64 `json:"professional_id"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "connections.validation.input")
	}

	conn, err := services.RequestProfessional(h.DB, CurrentUserID(c), body.ProfessionalID.Uint64())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message":    "Connection request sent",
		"connection": conn,
	}, fiber.StatusCreated)
}

// InviteClient handles POST /api/connection/invite-client
// @Summary Invite a client
// @Description Professional invites a client by email
// @Tags Connections
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /connection/invite-client [post]
func (h *ConnectionHandler) InviteClient(c *fiber.Ctx) error {
	var body struct {
		ClientEmail string `json:"client_email"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "connections.validation.input")
	}

	conn, err := services.InviteClient(h.DB, CurrentUserID(c), body.ClientEmail)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message":    "Invitation sent",
		"connection": conn,
	}, fiber.StatusCreated)
}

// Respond handles POST /api/connection/respond
// @Summary Respond to a connection request
// @Description Accept or reject a pending connection
// @Tags Connections
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /connection/respond [post]
func (h *ConnectionHandler) Respond(c *fiber.Ctx) error {
	var body struct {
		ConnectionID types.FlexUint64 `json:"connection_id"`
		Action       string           `json:"action"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "connections.validation.input")
	}

	conn, err := services.RespondConnection(h.DB, body.ConnectionID.Uint64(), CurrentUserID(c), body.Action)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message":    fmt.Sprintf("Connection %s", conn.Status),
		"connection": conn,
	}, fiber.StatusOK)
}

// List handles GET /api/connection/list
// @Summary List connections
// @Description List every connection where the caller is a party
// @Tags Connections
// @Produce json
// @Success 200 {array} services.ConnectionView
// @Router /connection/list [get]
func (h *ConnectionHandler) List(c *fiber.Ctx) error {
	conns, err := services.ListConnections(h.DB, CurrentUserID(c))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, conns, fiber.StatusOK)
}

// Remove handles DELETE /api/connection/:id
// @Summary Remove a connection
// @Description Delete a connection regardless of status; either party may remove
// @Tags Connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /connection/{id} [delete]
func (h *ConnectionHandler) Remove(c *fiber.Ctx) error {
	connectionID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid connection id", fiber.StatusBadRequest, "connections.validation.input")
	}

	if err := services.RemoveConnection(h.DB, connectionID, CurrentUserID(c)); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Connection removed",
	}, fiber.StatusOK)
}
