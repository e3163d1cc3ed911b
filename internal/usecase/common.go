// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"io"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   entity.RoleName
}

// IsAdmin reports whether the caller holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// IsStaff reports whether the caller is admin or support.
func (a Actor) IsStaff() bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleSupport
}

// FileUpload is one multipart file handed to a use case.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
