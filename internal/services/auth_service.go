package services

import (
	"errors"
	"fmt"

	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput contains sign-up parameters.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// Signup creates a User and issues a token for it. Email must not already be
// registered; role must be one of the closed set.
func Signup(db *gorm.DB, cfg *config.Config, in SignupInput) (*models.User, string, error) {
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, "", types.NewValidationError("Missing required fields", "auth.validation.input")
	}
	if !in.Role.Valid() {
		return nil, "", types.NewValidationError(fmt.Sprintf("Unrecognized role %q", in.Role), "auth.validation.role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", in.Email).First(&existing).Error; err == nil {
			return types.NewConflictError("User already exists", "auth.conflict.email")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.NewConflictError("User already exists", "auth.conflict.email")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := IssueToken(cfg, &user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login verifies credentials and issues a token. The same AuthError covers
// unknown email and hash mismatch so the response does not reveal which.
func Login(db *gorm.DB, cfg *config.Config, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", types.NewValidationError("Missing required fields", "auth.validation.input")
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", types.NewAuthError("Invalid credentials", "auth.credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", types.NewAuthError("Invalid credentials", "auth.credentials")
	}

	token, err := IssueToken(cfg, &user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
