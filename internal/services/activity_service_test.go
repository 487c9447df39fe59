package services_test

import (
	"net/http"
	"testing"

	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/services"
)

func TestCreateActivity(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)

	activity, err := services.CreateActivity(db, pro.ID, "Yoga", "Weekly group session")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if activity.Title != "Yoga" {
		t.Errorf("Expected title Yoga, got %s", activity.Title)
	}
	if activity.CreatedBy != pro.ID {
		t.Errorf("Expected created_by %d, got %d", pro.ID, activity.CreatedBy)
	}
	if activity.Creator.Email != "pat@example.com" {
		t.Errorf("Unexpected creator: %+v", activity.Creator)
	}
}

func TestCreateActivityEmptyTitle(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)

	_, err := services.CreateActivity(db, pro.ID, "", "whatever")
	expectCustomError(t, err, http.StatusBadRequest)
}

func TestInviteToActivity(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	client := mustCreateUser(t, db, "Cam", "cam@example.com", models.RoleClient)

	activity, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}

	invite, err := services.InviteToActivity(db, pro.ID, activity.ID, client.ID)
	if err != nil {
		t.Fatalf("InviteToActivity failed: %v", err)
	}
	if invite.Status != models.InvitePending {
		t.Errorf("Expected pending, got %s", invite.Status)
	}
	if invite.Activity.Title != "Yoga" {
		t.Errorf("Expected embedded activity, got %+v", invite.Activity)
	}
	if invite.Client.Email != "cam@example.com" {
		t.Errorf("Unexpected client: %+v", invite.Client)
	}
}

func TestInviteToActivityGuards(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	otherPro := mustCreateUser(t, db, "Paula", "paula@example.com", models.RoleProfessional)
	client := mustCreateUser(t, db, "Cam", "cam@example.com", models.RoleClient)

	activity, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}

	// Missing ids
	_, err = services.InviteToActivity(db, pro.ID, 0, client.ID)
	expectCustomError(t, err, http.StatusBadRequest)
	_, err = services.InviteToActivity(db, pro.ID, activity.ID, 0)
	expectCustomError(t, err, http.StatusBadRequest)

	// Absent activity
	_, err = services.InviteToActivity(db, pro.ID, 9999, client.ID)
	expectCustomError(t, err, http.StatusNotFound)

	// Not the owner: same NotFound, no existence leak
	_, err = services.InviteToActivity(db, otherPro.ID, activity.ID, client.ID)
	expectCustomError(t, err, http.StatusNotFound)

	// Invited id is not a client
	_, err = services.InviteToActivity(db, pro.ID, activity.ID, otherPro.ID)
	expectCustomError(t, err, http.StatusNotFound)
}

func TestInviteToActivityDuplicate(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	client := mustCreateUser(t, db, "Cam", "cam@example.com", models.RoleClient)

	activity, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if _, err := services.InviteToActivity(db, pro.ID, activity.ID, client.ID); err != nil {
		t.Fatalf("First invite failed: %v", err)
	}

	_, err = services.InviteToActivity(db, pro.ID, activity.ID, client.ID)
	expectCustomError(t, err, http.StatusBadRequest)

	var count int64
	db.Model(&models.ActivityInvite{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected one invite for the pair, got %d", count)
	}
}

func TestRespondInvite(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	client := mustCreateUser(t, db, "Cam", "cam@example.com", models.RoleClient)
	stranger := mustCreateUser(t, db, "Sal", "sal@example.com", models.RoleClient)

	activity, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	invite, err := services.InviteToActivity(db, pro.ID, activity.ID, client.ID)
	if err != nil {
		t.Fatalf("InviteToActivity failed: %v", err)
	}

	// Only the invited client may respond
	_, err = services.RespondInvite(db, invite.ID, stranger.ID, services.ActionAccept)
	expectCustomError(t, err, http.StatusForbidden)
	_, err = services.RespondInvite(db, invite.ID, pro.ID, services.ActionAccept)
	expectCustomError(t, err, http.StatusForbidden)

	// Invalid action
	_, err = services.RespondInvite(db, invite.ID, client.ID, "reject")
	expectCustomError(t, err, http.StatusBadRequest)

	updated, err := services.RespondInvite(db, invite.ID, client.ID, services.ActionDecline)
	if err != nil {
		t.Fatalf("RespondInvite failed: %v", err)
	}
	if updated.Status != models.InviteDeclined {
		t.Errorf("Expected declined, got %s", updated.Status)
	}

	// Declined is terminal
	_, err = services.RespondInvite(db, invite.ID, client.ID, services.ActionAccept)
	expectCustomError(t, err, http.StatusBadRequest)
}

func TestListActivities(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	otherPro := mustCreateUser(t, db, "Paula", "paula@example.com", models.RoleProfessional)
	client := mustCreateUser(t, db, "Cam", "cam@example.com", models.RoleClient)

	yoga, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if _, err := services.CreateActivity(db, otherPro.ID, "Pilates", ""); err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if _, err := services.InviteToActivity(db, pro.ID, yoga.ID, client.ID); err != nil {
		t.Fatalf("InviteToActivity failed: %v", err)
	}

	activities, err := services.ListActivitiesForProfessional(db, pro.ID)
	if err != nil {
		t.Fatalf("ListActivitiesForProfessional failed: %v", err)
	}
	if len(activities) != 1 || activities[0].Title != "Yoga" {
		t.Errorf("Expected only the professional's own activity, got %+v", activities)
	}

	invites, err := services.ListInvitesForClient(db, client.ID)
	if err != nil {
		t.Fatalf("ListInvitesForClient failed: %v", err)
	}
	if len(invites) != 1 {
		t.Fatalf("Expected one invite, got %d", len(invites))
	}
	if invites[0].Activity.Title != "Yoga" {
		t.Errorf("Expected embedded activity Yoga, got %+v", invites[0].Activity)
	}
	if invites[0].Activity.Creator.ID != pro.ID {
		t.Errorf("Expected inviting professional embedded, got %+v", invites[0].Activity.Creator)
	}
}

func TestDeleteActivityCascades(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	client := mustCreateUser(t, db, "Cam", "cam@example.com", models.RoleClient)
	clientTwo := mustCreateUser(t, db, "Kim", "kim@example.com", models.RoleClient)

	yoga, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	pilates, err := services.CreateActivity(db, pro.ID, "Pilates", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}

	if _, err := services.InviteToActivity(db, pro.ID, yoga.ID, client.ID); err != nil {
		t.Fatalf("InviteToActivity failed: %v", err)
	}
	if _, err := services.InviteToActivity(db, pro.ID, yoga.ID, clientTwo.ID); err != nil {
		t.Fatalf("InviteToActivity failed: %v", err)
	}
	if _, err := services.InviteToActivity(db, pro.ID, pilates.ID, client.ID); err != nil {
		t.Fatalf("InviteToActivity failed: %v", err)
	}

	if err := services.DeleteActivity(db, yoga.ID, pro.ID); err != nil {
		t.Fatalf("DeleteActivity failed: %v", err)
	}

	var activityCount, inviteCount int64
	db.Model(&models.GroupActivity{}).Count(&activityCount)
	db.Model(&models.ActivityInvite{}).Count(&inviteCount)
	if activityCount != 1 {
		t.Errorf("Expected one remaining activity, got %d", activityCount)
	}
	if inviteCount != 1 {
		t.Errorf("Expected only the other activity's invite to survive, got %d", inviteCount)
	}

	var survivor models.ActivityInvite
	if err := db.First(&survivor).Error; err != nil {
		t.Fatalf("Failed to load surviving invite: %v", err)
	}
	if survivor.ActivityID != pilates.ID {
		t.Errorf("Wrong invite survived: %+v", survivor)
	}
}

func TestDeleteActivityGuards(t *testing.T) {
	db := setupTestDB(t)
	pro := mustCreateUser(t, db, "Pat", "pat@example.com", models.RoleProfessional)
	otherPro := mustCreateUser(t, db, "Paula", "paula@example.com", models.RoleProfessional)

	activity, err := services.CreateActivity(db, pro.ID, "Yoga", "")
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}

	err = services.DeleteActivity(db, 9999, pro.ID)
	expectCustomError(t, err, http.StatusNotFound)

	err = services.DeleteActivity(db, activity.ID, otherPro.ID)
	expectCustomError(t, err, http.StatusForbidden)

	var count int64
	db.Model(&models.GroupActivity{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected activity to survive forbidden delete, got %d rows", count)
	}
}
