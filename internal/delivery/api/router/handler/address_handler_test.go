package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressHandlerFixtures struct {
	e         *echo.Echo
	userID    uuid.UUID
	addressUC *mockUsecase.MockAddressUsecase
}

func createTestAddressHandler(t *testing.T) addressHandlerFixtures {
	fx := addressHandlerFixtures{
		e:         newTestEcho(),
		userID:    uuid.New(),
		addressUC: mockUsecase.NewMockAddressUsecase(t),
	}

	h := NewAddressHandler(AddressHandlerParams{AddressUC: fx.addressUC, Logger: discardLogger})
	g := fx.e.Group("/api/v1/addresses", asCaller(fx.userID, entity.RoleCustomer))
	g.GET("", h.ListAddresses)
	g.GET("/default", h.GetDefault)
	g.POST("", h.AddAddress)
	g.PUT("/:id", h.UpdateAddress)
	g.DELETE("/:id", h.DeleteAddress)
	g.PUT("/:id/default", h.SetDefault)

	return fx
}

func TestAddressHandler_AddAddress(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addressUC.EXPECT().AddAddress(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.AddressInput) bool {
		return in.City != nil && *in.City == "Porto" &&
			in.AddressType != nil && *in.AddressType == entity.AddressTypeWork &&
			in.IsDefault != nil && *in.IsDefault &&
			in.ZipCode == nil
	})).Return(&entity.Address{ID: uuid.New(), UserID: fx.userID, City: "Porto", AddressType: entity.AddressTypeWork, IsDefault: true}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/addresses",
		`{"full_name":"Ana Lima","city":"Porto","address_type":"work","is_default":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[entity.Address](t, rec)
	assert.Equal(t, entity.AddressTypeWork, got.AddressType)
	assert.True(t, got.IsDefault)
}

func TestAddressHandler_AddAddress_BadType(t *testing.T) {
	fx := createTestAddressHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/addresses", `{"city":"Porto","address_type":"castle"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be one of: home, work, other", decodeEnvelope(t, rec).Details["address_type"])
}

func TestAddressHandler_GetDefault_None(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addressUC.EXPECT().GetDefaultAddress(mock.Anything, fx.userID).Return(nil, errors.WithStack(domainerrors.ErrAddressNotFound))

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/addresses/default", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", decodeEnvelope(t, rec).Code)
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addressUC.EXPECT().ListAddresses(mock.Anything, fx.userID).Return([]*entity.Address{
		{ID: uuid.New(), IsDefault: true},
		{ID: uuid.New()},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/addresses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]*entity.Address](t, rec), 2)
}

func TestAddressHandler_SetDefault(t *testing.T) {
	fx := createTestAddressHandler(t)
	addressID := uuid.New()

	fx.addressUC.EXPECT().SetDefaultAddress(mock.Anything, fx.userID, addressID).
		Return(&entity.Address{ID: addressID, IsDefault: true}, nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/addresses/"+addressID.String()+"/default", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.Address](t, rec).IsDefault)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		fx := createTestAddressHandler(t)
		addressID := uuid.New()
		fx.addressUC.EXPECT().DeleteAddress(mock.Anything, fx.userID, addressID).Return(nil)

		rec := doRequest(fx.e, http.MethodDelete, "/api/v1/addresses/"+addressID.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestAddressHandler(t)

		rec := doRequest(fx.e, http.MethodDelete, "/api/v1/addresses/home", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid id format", decodeEnvelope(t, rec).Message)
	})
}
