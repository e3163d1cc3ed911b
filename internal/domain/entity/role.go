// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RoleName is one of the fixed role names a user can hold.
type RoleName string

const (
	// RoleCustomer is the default role given at registration.
	RoleCustomer RoleName = "customer"
	// RoleSeller is granted when an admin approves a seller application.
	RoleSeller RoleName = "seller"
	// RoleAdmin has full access to the platform.
	RoleAdmin RoleName = "admin"
	// RoleSupport can read orders and users but not change catalog data.
	RoleSupport RoleName = "support"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// IsValid checks if the RoleName is a valid value.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin, RoleSupport:
		return true
	default:
		return false
	}
}

// Priority orders roles for seeding and display; higher means more privileged.
func (r RoleName) Priority() int {
	switch r {
	case RoleAdmin:
		return 100
	case RoleSupport:
		return 50
	case RoleSeller:
		return 20
	case RoleCustomer:
		return 10
	default:
		return 0
	}
}

// RoleNames is a slice of RoleName for convenience.
type RoleNames []RoleName

// Contains checks if the role list contains a specific role.
func (rs RoleNames) Contains(role RoleName) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts RoleNames to []string for JWT compatibility.
func (rs RoleNames) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Permission is a (resource, action) pair such as (product, create).
type Permission struct {
	ID          uuid.UUID `json:"id"`
	Resource    string    `json:"resource"`
	Action      string    `json:"action"`
	Description string    `json:"description,omitempty"`
}

// Key returns "resource:action".
func (p Permission) Key() string {
	return p.Resource + ":" + p.Action
}

// Role is static reference data seeded once.
type Role struct {
	ID          uuid.UUID     `json:"id"`
	Name        RoleName      `json:"name"`
	Description string        `json:"description,omitempty"`
	Priority    int           `json:"priority"`
	Permissions []*Permission `json:"permissions,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// HasPermission reports whether the role grants the given resource/action.
func (r *Role) HasPermission(resource, action string) bool {
	if r == nil {
		return false
	}

	return slices.ContainsFunc(r.Permissions, func(p *Permission) bool {
		return p.Resource == resource && p.Action == action
	})
}
