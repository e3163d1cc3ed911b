package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	fx := addressServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
	}

	srv := NewAddressService(AddressServiceParams{
		TxManager:   fx.txManager,
		AddressRepo: fx.addressRepo,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})
	srv.(*addressService).clock = fixedClock()
	fx.service = srv

	return fx
}

func (fx addressServiceFixtures) expectTx() {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAddressRepository().Return(fx.addressRepo)
}

func homeAddress() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:     strPtr(" Ada Lovelace "),
		Phone:        strPtr("+44 20 7946 0000"),
		AddressLine1: strPtr("12 St James's Square"),
		City:         strPtr("London"),
		State:        strPtr("Greater London"),
		Country:      strPtr("GB"),
		ZipCode:      strPtr("SW1Y 4LB"),
	}
}

func TestAddressService_AddAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	fx.expectTx()
	fx.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(0, nil)
	fx.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.AddAddress(context.Background(), userID, homeAddress())
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "Ada Lovelace", address.FullName)
	assert.Equal(t, entity.AddressTypeHome, address.AddressType)
	assert.Equal(t, testNow, address.CreatedAt)
}

func TestAddressService_AddAddress_NewDefaultClearsOld(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()
	input := homeAddress()
	isDefault := true
	input.IsDefault = &isDefault

	fx.expectTx()
	fx.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(2, nil)
	fx.addressRepo.EXPECT().ClearDefault(mock.Anything, userID).Return(nil)
	fx.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.AddAddress(context.Background(), userID, input)
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_AddAddress_Limit(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	fx.expectTx()
	fx.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(3, nil)

	_, err := fx.service.AddAddress(context.Background(), userID, homeAddress())
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "at most 3 addresses")
}

func TestAddressService_AddAddress_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.AddressInput)
		details string
	}{
		{
			name:    "missing city and zip",
			mutate:  func(in *usecase.AddressInput) { in.City = nil; in.ZipCode = strPtr("  ") },
			details: "city, zip_code",
		},
		{
			name: "unknown type",
			mutate: func(in *usecase.AddressInput) {
				kind := entity.AddressType("cabin")
				in.AddressType = &kind
			},
			details: "home, work or other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t)
			input := homeAddress()
			tt.mutate(input)

			_, err := fx.service.AddAddress(context.Background(), uuid.New(), input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.details)
		})
	}
}

func TestAddressService_UpdateAddress_OtherUser(t *testing.T) {
	fx := createTestAddressService(t)
	addressID := uuid.New()

	fx.expectTx()
	fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, addressID).Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

	_, err := fx.service.UpdateAddress(context.Background(), uuid.New(), addressID, &usecase.AddressInput{City: strPtr("Paris")})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_UpdateAddress_CannotUnsetDefault(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()
	existing := &entity.Address{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     "Ada Lovelace",
		Phone:        "+44 20 7946 0000",
		AddressLine1: "12 St James's Square",
		City:         "London",
		State:        "Greater London",
		Country:      "GB",
		ZipCode:      "SW1Y 4LB",
		AddressType:  entity.AddressTypeHome,
		IsDefault:    true,
	}
	notDefault := false

	fx.expectTx()
	fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.addressRepo.EXPECT().UpdateAddress(mock.Anything, existing).Return(nil)

	address, err := fx.service.UpdateAddress(context.Background(), userID, existing.ID, &usecase.AddressInput{
		City:      strPtr("Cambridge"),
		IsDefault: &notDefault,
	})
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "Cambridge", address.City)
	assert.Equal(t, testNow, address.UpdatedAt)
}

func TestAddressService_DeleteAddress_PromotesNext(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()
	deleted := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true}
	next := &entity.Address{ID: uuid.New(), UserID: userID}
	last := &entity.Address{ID: uuid.New(), UserID: userID}

	fx.expectTx()
	fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, deleted.ID).Return(deleted, nil)
	fx.addressRepo.EXPECT().DeleteAddress(mock.Anything, deleted.ID).Return(nil)
	fx.addressRepo.EXPECT().FindAddressesByUser(mock.Anything, userID).Return([]*entity.Address{next, last}, nil)
	fx.addressRepo.EXPECT().UpdateAddress(mock.Anything, next).Return(nil)

	require.NoError(t, fx.service.DeleteAddress(context.Background(), userID, deleted.ID))
	assert.True(t, next.IsDefault)
	assert.False(t, last.IsDefault)
}

func TestAddressService_DeleteAddress_NonDefault(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	fx.expectTx()
	fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil)
	fx.addressRepo.EXPECT().DeleteAddress(mock.Anything, address.ID).Return(nil)

	require.NoError(t, fx.service.DeleteAddress(context.Background(), userID, address.ID))
}

func TestAddressService_GetDefaultAddress_None(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	fx.addressRepo.EXPECT().FindDefaultAddressByUser(mock.Anything, userID).Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.GetDefaultAddress(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
