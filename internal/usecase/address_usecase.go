package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries address fields; on update nil pointer fields are left unchanged.
type AddressInput struct {
	FullName     *string
	Phone        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	Country      *string
	ZipCode      *string
	AddressType  *entity.AddressType
	IsDefault    *bool
}

// AddressUsecase manages a user's saved addresses. At most one is the default.
type AddressUsecase interface {
	// AddAddress makes the first address of a user its default.
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	GetDefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
}
