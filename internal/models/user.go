package models

import (
	"time"
)

// Role is the closed set of user roles. Unrecognized values are rejected
// at the API boundary, never stored.
type Role string

const (
	RoleProfessional Role = "professional"
	RoleClient       Role = "client"
)

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	return r == RoleProfessional || r == RoleClient
}

// User is an account in either role. Role is immutable after signup and
// users are never deleted, so Connection/ActivityInvite rows may reference
// them by id without cascade rules.
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the reduced shape exposed when a user is nested inside
// another payload.
type PublicUser struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the nested-payload view of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
