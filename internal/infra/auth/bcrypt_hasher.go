package auth

import (
	"fmt"
	"unicode/utf8"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes, so longer passwords are rejected
// instead of silently truncated.
const maxPasswordBytes = 72

type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher reads auth.bcryptCost and auth.minPasswordLength. A cost
// outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: 6}
	if cfg == nil || cfg.Auth == nil {
		return h
	}
	if c := cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
		h.cost = c
	}
	if cfg.Auth.MinPasswordLength > 0 {
		h.minLength = cfg.Auth.MinPasswordLength
	}

	return h
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(digest), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength counts the minimum in characters and the maximum
// in bytes.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	switch {
	case utf8.RuneCountInString(password) < h.minLength:
		return domainerrors.ErrPasswordStrength.WithMessage(fmt.Sprintf("Password must be at least %d characters", h.minLength))
	case len(password) > maxPasswordBytes:
		return domainerrors.ErrPasswordStrength.WithMessage(fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	default:
		return nil
	}
}
