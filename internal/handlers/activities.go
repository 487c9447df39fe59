package handlers

import (
	"fmt"
	"strconv"

	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/services"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ActivityHandler handles the group-activity routes
type ActivityHandler struct {
	DB *gorm.DB
}

// Create handles POST /api/activities/
// @Summary Create a group activity
// @Description Professional creates a group activity
// @Tags Activities
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /activities/ [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "activities.validation.input")
	}

	activity, err := services.CreateActivity(h.DB, CurrentUserID(c), body.Title, body.Description)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message":  "Activity created",
		"activity": activity,
	}, fiber.StatusCreated)
}

// Invite handles POST /api/activities/invite
// @Summary Invite a client to an activity
// @Description Activity creator invites a client
// @Tags Activities
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/invite [post]
func (h *ActivityHandler) Invite(c *fiber.Ctx) error {
	var body struct {
		ActivityID types.FlexUint64 `json:"activity_id"`
		ClientID   types.FlexUint64 `json:"client_id"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "activities.validation.input")
	}

	invite, err := services.InviteToActivity(h.DB, CurrentUserID(c), body.ActivityID.Uint64(), body.ClientID.Uint64())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Client invited to activity",
		"invite":  invite,
	}, fiber.StatusCreated)
}

// Respond handles POST /api/activities/respond
// @Summary Respond to an activity invite
// @Description Invited client accepts or declines a pending invite
// @Tags Activities
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/respond [post]
func (h *ActivityHandler) Respond(c *fiber.Ctx) error {
	var body struct {
		InviteID types.FlexUint64 `json:"invite_id"`
		Action   string           `json:"action"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "activities.validation.input")
	}

	invite, err := services.RespondInvite(h.DB, body.InviteID.Uint64(), CurrentUserID(c), body.Action)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": fmt.Sprintf("Invite %s", invite.Status),
		"invite":  invite,
	}, fiber.StatusOK)
}

// List handles GET /api/activities/list
// @Summary List activities
// @Description Professionals see the activities they created; clients see their invites
// @Tags Activities
// @Produce json
// @Success 200 {array} services.ActivityView
// @Router /activities/list [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	if CurrentRole(c) == models.RoleProfessional {
		activities, err := services.ListActivitiesForProfessional(h.DB, CurrentUserID(c))
		if err != nil {
			return err
		}
		return utils.SuccessResponse(c, activities, fiber.StatusOK)
	}

	invites, err := services.ListInvitesForClient(h.DB, CurrentUserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, invites, fiber.StatusOK)
}

// Delete handles DELETE /api/activities/:id
// @Summary Delete an activity
// @Description Delete an activity and all its invites together
// @Tags Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	activityID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid activity id", fiber.StatusBadRequest, "activities.validation.input")
	}

	if err := services.DeleteActivity(h.DB, activityID, CurrentUserID(c)); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Activity deleted",
	}, fiber.StatusOK)
}
