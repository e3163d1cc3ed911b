package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxAddresses = 10

type addressService struct {
	txManager    repository.TransactionManager
	addressRepo  repository.AddressRepository
	maxAddresses int
	logger       *slog.Logger
	clock        clock
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	maxAddresses := defaultMaxAddresses
	if params.Config != nil && params.Config.Shop != nil && params.Config.Shop.MaxAddresses > 0 {
		maxAddresses = params.Config.Shop.MaxAddresses
	}

	return &addressService{
		txManager:    params.TxManager,
		addressRepo:  params.AddressRepo,
		maxAddresses: maxAddresses,
		logger:       params.Logger,
	}
}

func (s *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.logger)
}

// applyAddressInput copies the non-nil input fields onto the address.
func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&address.FullName, input.FullName)
	set(&address.Phone, input.Phone)
	set(&address.AddressLine1, input.AddressLine1)
	set(&address.AddressLine2, input.AddressLine2)
	set(&address.City, input.City)
	set(&address.State, input.State)
	set(&address.Country, input.Country)
	set(&address.ZipCode, input.ZipCode)
	if input.AddressType != nil {
		address.AddressType = *input.AddressType
	}
}

func validateAddress(address *entity.Address) error {
	var missing []string
	for field, value := range map[string]string{
		"full_name":     address.FullName,
		"phone":         address.Phone,
		"address_line1": address.AddressLine1,
		"city":          address.City,
		"state":         address.State,
		"country":       address.Country,
		"zip_code":      address.ZipCode,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithMessage("Missing required address fields").WithDetails(strings.Join(missing, ", ")),
			"invalid address",
		)
	}

	switch address.AddressType {
	case entity.AddressTypeHome, entity.AddressTypeWork, entity.AddressTypeOther:
		return nil
	default:
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Address type must be home, work or other"), "invalid address")
	}
}

// AddAddress saves a new address. The first one, or one flagged default, becomes the default.
func (s *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	now := s.clock.now()
	address := &entity.Address{
		ID:          uuid.New(),
		UserID:      userID,
		AddressType: entity.AddressTypeHome,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyAddressInput(address, input)
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		count, err := addressRepo.CountAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count >= int64(s.maxAddresses) {
			return errors.Wrap(
				domainerrors.ErrValidationFailed.WithMessage("Address limit reached").WithDetails("at most "+strconv.Itoa(s.maxAddresses)+" addresses"),
				"add address",
			)
		}

		address.IsDefault = count == 0 || (input.IsDefault != nil && *input.IsDefault)
		if address.IsDefault && count > 0 {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		return errors.Wrap(addressRepo.CreateAddress(ctx, address), "failed to create address")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add address transaction")
	}

	return address, nil
}

// ListAddresses retrieves all addresses of a user
func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	return addresses, nil
}

// GetDefaultAddress returns the user's default address.
func (s *addressService) GetDefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	address, err := s.addressRepo.FindDefaultAddressByUser(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find default address")
	}

	return address, nil
}

// ownedAddress loads an address and hides those of other users.
func ownedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, translate(err, "failed to find address")
	}
	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address belongs to another user")
	}

	return address, nil
}

// UpdateAddress updates an existing address of the user
func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	var address *entity.Address

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		var err error
		address, err = ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		applyAddressInput(address, input)
		if err := validateAddress(address); err != nil {
			return err
		}
		// Unsetting the default is ignored so the user keeps exactly one.
		if input.IsDefault != nil && *input.IsDefault && !address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
			address.IsDefault = true
		}
		address.UpdatedAt = s.clock.now()

		return errors.Wrap(addressRepo.UpdateAddress(ctx, address), "failed to update address")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	return address, nil
}

// DeleteAddress removes an address; deleting the default promotes the next one.
func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return translate(err, "failed to delete address")
		}
		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.FindAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}
		next := remaining[0]
		next.IsDefault = true
		next.UpdatedAt = s.clock.now()

		return errors.Wrap(addressRepo.UpdateAddress(ctx, next), "failed to promote default address")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete address transaction")
	}
	s.log(ctx).Debug("Address deleted", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return nil
}

// SetDefaultAddress makes the address the user's only default.
func (s *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	var address *entity.Address

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		var err error
		address, err = ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		if address.IsDefault {
			return nil
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default address")
		}
		address.IsDefault = true
		address.UpdatedAt = s.clock.now()

		return errors.Wrap(addressRepo.UpdateAddress(ctx, address), "failed to set default address")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute set default address transaction")
	}

	return address, nil
}
