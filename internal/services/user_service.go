package services

import (
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"gorm.io/gorm"
)

// ListUsers returns users, optionally filtered by role. An unrecognized role
// filter is rejected rather than matching nothing.
func ListUsers(db *gorm.DB, role string) ([]models.User, error) {
	query := db.Model(&models.User{})
	if role != "" {
		if !models.Role(role).Valid() {
			return nil, types.NewValidationError("Unrecognized role filter", "users.validation.role")
		}
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
