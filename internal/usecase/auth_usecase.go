package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token to rotate.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput ends one session, or every session of the user when AllDevices is set.
type LogoutInput struct {
	UserID       uuid.UUID
	RefreshToken string
	AllDevices   bool
}

// ResetPasswordInput carries the emailed reset token and the new password.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued token pair with the signed-in user.
type AuthOutput struct {
	AccessToken     string
	AccessExpiresAt time.Time
	RefreshToken    string
	User            *entity.User
}

// AuthUsecase defines credential, token and account recovery operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	// ForgotPassword succeeds silently for unknown emails.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	// RefreshToken rotates the refresh token: the presented one is revoked and a new pair issued.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
