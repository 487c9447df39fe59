package services

import (
	"errors"

	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"gorm.io/gorm"
)

// ActionDecline is the invite counterpart of ActionReject.
const ActionDecline = "decline"

// ActivityView is the API output shape for a group activity.
type ActivityView struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CreatedBy   uint64            `json:"created_by"`
	CreatedAt   string            `json:"created_at"`
	Creator     models.PublicUser `json:"creator"`
}

// InviteView is the API output shape for an activity invite. Clients receive
// the parent activity, with its creator, embedded.
type InviteView struct {
	ID         uint64              `json:"id"`
	ActivityID uint64              `json:"activity_id"`
	ClientID   uint64              `json:"client_id"`
	Status     models.InviteStatus `json:"status"`
	Activity   ActivityView        `json:"activity"`
	Client     models.PublicUser   `json:"client"`
}

func activityView(activity *models.GroupActivity) *ActivityView {
	return &ActivityView{
		ID:          activity.ID,
		Title:       activity.Title,
		Description: activity.Description,
		CreatedBy:   activity.CreatedBy,
		CreatedAt:   activity.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Creator:     activity.Creator.Public(),
	}
}

func inviteView(invite *models.ActivityInvite) *InviteView {
	return &InviteView{
		ID:         invite.ID,
		ActivityID: invite.ActivityID,
		ClientID:   invite.ClientID,
		Status:     invite.Status,
		Activity:   *activityView(&invite.Activity),
		Client:     invite.Client.Public(),
	}
}

// CreateActivity creates a group activity owned by the professional.
func CreateActivity(db *gorm.DB, professionalID uint64, title, description string) (*ActivityView, error) {
	if title == "" {
		return nil, types.NewValidationError("Title is required", "activities.validation.input")
	}

	activity := models.GroupActivity{
		Title:       title,
		Description: description,
		CreatedBy:   professionalID,
	}
	if err := db.Create(&activity).Error; err != nil {
		return nil, err
	}

	return loadActivityView(db, activity.ID)
}

// InviteToActivity creates a pending invite for a client. Ownership and
// existence collapse into one NotFoundError so non-owners cannot probe for
// activity ids. The invited user must exist with role client.
func InviteToActivity(db *gorm.DB, professionalID, activityID, clientID uint64) (*InviteView, error) {
	if activityID == 0 || clientID == 0 {
		return nil, types.NewValidationError("Activity ID and Client ID are required", "activities.validation.input")
	}

	invite := models.ActivityInvite{
		ActivityID: activityID,
		ClientID:   clientID,
		Status:     models.InvitePending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var activity models.GroupActivity
		if err := tx.First(&activity, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Activity not found", "activities.notfound")
			}
			return err
		}
		if activity.CreatedBy != professionalID {
			return types.NewNotFoundError("Activity not found", "activities.notfound")
		}

		var client models.User
		if err := tx.Where("id = ? AND role = ?", clientID, models.RoleClient).
			First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Client not found", "activities.notfound.client")
			}
			return err
		}

		var existing models.ActivityInvite
		err := tx.Where("activity_id = ? AND client_id = ?", activityID, clientID).
			First(&existing).Error
		if err == nil {
			return types.NewConflictError("Invite already exists", "activities.conflict.duplicate")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&invite).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.NewConflictError("Invite already exists", "activities.conflict.duplicate")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadInviteView(db, invite.ID)
}

// RespondInvite applies a pending -> accepted|declined transition. Only the
// invited client may respond, and only while the invite is pending.
func RespondInvite(db *gorm.DB, inviteID, actorID uint64, action string) (*InviteView, error) {
	if inviteID == 0 || action == "" {
		return nil, types.NewValidationError("Missing required fields", "activities.validation.input")
	}

	var target models.InviteStatus
	switch action {
	case ActionAccept:
		target = models.InviteAccepted
	case ActionDecline:
		target = models.InviteDeclined
	default:
		return nil, types.NewValidationError("Invalid action", "activities.validation.action")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var invite models.ActivityInvite
		if err := tx.First(&invite, inviteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Invite not found", "activities.notfound.invite")
			}
			return err
		}

		if invite.ClientID != actorID {
			return types.NewForbiddenError("Not the invited client", "activities.forbidden.client")
		}
		if invite.Status != models.InvitePending {
			return types.NewConflictError("Invite is not pending", "activities.conflict.state")
		}

		return tx.Model(&invite).Update("status", target).Error
	})
	if err != nil {
		return nil, err
	}

	return loadInviteView(db, inviteID)
}

// ListActivitiesForProfessional returns the activities the user created.
func ListActivitiesForProfessional(db *gorm.DB, userID uint64) ([]*ActivityView, error) {
	var activities []models.GroupActivity
	if err := db.Preload("Creator").
		Where("created_by = ?", userID).
		Order("id").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	views := make([]*ActivityView, 0, len(activities))
	for i := range activities {
		views = append(views, activityView(&activities[i]))
	}
	return views, nil
}

// ListInvitesForClient returns the invites addressed to the user, each with
// its parent activity and the inviting professional's public fields.
func ListInvitesForClient(db *gorm.DB, userID uint64) ([]*InviteView, error) {
	var invites []models.ActivityInvite
	if err := db.Preload("Activity").Preload("Activity.Creator").Preload("Client").
		Where("client_id = ?", userID).
		Order("id").
		Find(&invites).Error; err != nil {
		return nil, err
	}

	views := make([]*InviteView, 0, len(invites))
	for i := range invites {
		views = append(views, inviteView(&invites[i]))
	}
	return views, nil
}

// DeleteActivity removes an activity and all its invites in one transaction;
// either both deletions land or neither does.
func DeleteActivity(db *gorm.DB, activityID, actorID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var activity models.GroupActivity
		if err := tx.First(&activity, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Activity not found", "activities.notfound")
			}
			return err
		}

		if activity.CreatedBy != actorID {
			return types.NewForbiddenError("Not the activity creator", "activities.forbidden.creator")
		}

		if err := tx.Where("activity_id = ?", activityID).
			Delete(&models.ActivityInvite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&activity).Error
	})
}

func loadActivityView(db *gorm.DB, activityID uint64) (*ActivityView, error) {
	var activity models.GroupActivity
	if err := db.Preload("Creator").First(&activity, activityID).Error; err != nil {
		return nil, err
	}
	return activityView(&activity), nil
}

func loadInviteView(db *gorm.DB, inviteID uint64) (*InviteView, error) {
	var invite models.ActivityInvite
	if err := db.Preload("Activity").Preload("Activity.Creator").Preload("Client").
		First(&invite, inviteID).Error; err != nil {
		return nil, err
	}
	return inviteView(&invite), nil
}
