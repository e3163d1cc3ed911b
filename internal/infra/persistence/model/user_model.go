package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName               string     `gorm:"type:varchar(50);not null"`
	LastName                string     `gorm:"type:varchar(50)"`
	Email                   string     `gorm:"type:varchar(255);unique;not null"`
	Phone                   string     `gorm:"type:varchar(30)"`
	Avatar                  string     `gorm:"type:varchar(500)"`
	RoleID                  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role                    *RoleModel `gorm:"foreignKey:RoleID"`
	IsEmailVerified         bool       `gorm:"not null;default:false"`
	EmailVerificationDigest string     `gorm:"type:varchar(64);index"`
	EmailVerificationExpiry *time.Time
	PasswordResetDigest     string `gorm:"type:varchar(64);index"`
	PasswordResetExpiry     *time.Time
	LastLogin               *time.Time
	IsActive                bool `gorm:"not null;default:true"`
	CreatedAt               time.Time
	UpdatedAt               time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string             `gorm:"type:varchar(20);unique;not null"`
	Description string             `gorm:"type:varchar(255)"`
	Priority    int                `gorm:"not null;default:0"`
	Permissions []*PermissionModel `gorm:"many2many:role_permissions;joinForeignKey:RoleID;joinReferences:PermissionID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// PermissionModel mirrors the 'permissions' table. (resource, action) is unique.
type PermissionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Resource    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_permissions_resource_action"`
	Action      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_permissions_resource_action"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissions"
}
