// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Credentials live in Authentication.
type User struct {
	ID                      uuid.UUID  `json:"id"`
	FirstName               string     `json:"first_name"`
	LastName                string     `json:"last_name"`
	Email                   string     `json:"email"`
	Phone                   string     `json:"phone,omitempty"`
	Avatar                  string     `json:"avatar,omitempty"`
	RoleID                  uuid.UUID  `json:"role_id"`
	Role                    *Role      `json:"role,omitempty"`
	IsEmailVerified         bool       `json:"is_email_verified"`
	EmailVerificationDigest string     `json:"-"`
	EmailVerificationExpiry *time.Time `json:"-"`
	PasswordResetDigest     string     `json:"-"`
	PasswordResetExpiry     *time.Time `json:"-"`
	LastLogin               *time.Time `json:"last_login,omitempty"`
	IsActive                bool       `json:"is_active"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// RoleName returns the resolved role name, or "" when the role was not loaded.
func (u *User) RoleName() RoleName {
	if u.Role == nil {
		return ""
	}

	return u.Role.Name
}
