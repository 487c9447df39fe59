package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.User{},
		&models.Connection{},
		&models.GroupActivity{},
		&models.ActivityInvite{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		DBType:     "sqlite",
		DBDatabase: ":memory:",
		JWTSecret:  "test-secret",
		JWTIssuer:  "healthcare-api",
		TokenTTL:   time.Hour,
	}
}

func expectCustomError(t *testing.T, err error, code int) *types.CustomError {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %d, got nil", code)
	}
	var customErr *types.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("Expected *types.CustomError, got %T: %v", err, err)
	}
	if customErr.Code != code {
		t.Fatalf("Expected code %d, got %d (%s)", code, customErr.Code, customErr.Message)
	}
	return customErr
}

func mustCreateUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}
