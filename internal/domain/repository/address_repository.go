package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressRepository keeps a user's shipping address book. At most one address
// per user is the default; callers clear the old default before setting a
// new one inside the same transaction.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	// FindAddressesByUser lists the default address first, then oldest first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	// FindDefaultAddressByUser returns ErrAddressNotFound when the user has none.
	FindDefaultAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
	ClearDefault(ctx context.Context, userID uuid.UUID) error
	UpdateAddress(ctx context.Context, address *entity.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	CountAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
