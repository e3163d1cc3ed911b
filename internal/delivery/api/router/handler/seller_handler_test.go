package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sellerHandlerFixtures struct {
	e        *echo.Echo
	actor    usecase.Actor
	sellerUC *mockUsecase.MockSellerUsecase
}

func createTestSellerHandler(t *testing.T, role entity.RoleName) sellerHandlerFixtures {
	fx := sellerHandlerFixtures{
		e:        newTestEcho(),
		actor:    usecase.Actor{UserID: uuid.New(), Role: role},
		sellerUC: mockUsecase.NewMockSellerUsecase(t),
	}

	h := NewSellerHandler(SellerHandlerParams{SellerUC: fx.sellerUC, Logger: discardLogger})
	fx.e.POST("/api/v1/public/sellers/register", h.Register)
	fx.e.GET("/api/v1/public/sellers/:id", h.GetSeller)

	g := fx.e.Group("/api/v1/sellers", asCaller(fx.actor.UserID, role))
	g.POST("/register", h.Register)
	g.GET("/stats", h.Stats)
	g.GET("", h.ListSellers)
	g.PUT("/:id/approve", h.Approve)
	g.PUT("/:id/reject", h.Reject)
	g.POST("/:id/reviews", h.CreateReview)

	return fx
}

func TestSellerHandler_Register_SignedIn(t *testing.T) {
	fx := createTestSellerHandler(t, entity.RoleCustomer)

	fx.sellerUC.EXPECT().RegisterSeller(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterSellerInput) bool {
		return in.UserID != nil && *in.UserID == fx.actor.UserID &&
			in.Account == nil &&
			in.Profile.BusinessName != nil && *in.Profile.BusinessName == "Kestrel Outdoor"
	})).Return(&entity.Seller{ID: uuid.New(), BusinessName: "Kestrel Outdoor", Status: entity.SellerStatusPending}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/sellers/register",
		`{"business_name":"Kestrel Outdoor","business_email":"hello@kestrel.example","tax_id":"FR123"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.SellerStatusPending, decodeData[entity.Seller](t, rec).Status)
}

func TestSellerHandler_Register_Anonymous(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		fx := createTestSellerHandler(t, entity.RoleCustomer)
		fx.sellerUC.EXPECT().RegisterSeller(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterSellerInput) bool {
			return in.UserID == nil && in.Account != nil && in.Account.Email == "ana@kestrel.example"
		})).Return(&entity.Seller{ID: uuid.New()}, nil)

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/public/sellers/register",
			`{"business_name":"Kestrel","account":{"first_name":"Ana","last_name":"Lima","email":"ana@kestrel.example","password":"s3cret!"}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("account fields are validated", func(t *testing.T) {
		fx := createTestSellerHandler(t, entity.RoleCustomer)

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/public/sellers/register",
			`{"business_name":"Kestrel","account":{"first_name":"Ana","last_name":"Lima","email":"not-an-email","password":"abc"}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "must be a valid email address", env.Details["account.email"])
		assert.Equal(t, "must be at least 6 characters", env.Details["account.password"])
	})

	t.Run("profile already exists", func(t *testing.T) {
		fx := createTestSellerHandler(t, entity.RoleCustomer)
		fx.sellerUC.EXPECT().RegisterSeller(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrSellerAlreadyExists))

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/sellers/register", `{"business_name":"Kestrel"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SELLER_ALREADY_EXISTS", decodeEnvelope(t, rec).Code)
	})
}

func TestSellerHandler_GetSeller_BadID(t *testing.T) {
	fx := createTestSellerHandler(t, entity.RoleCustomer)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/public/sellers/kestrel", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id format", decodeEnvelope(t, rec).Message)
}

func TestSellerHandler_Stats(t *testing.T) {
	fx := createTestSellerHandler(t, entity.RoleSeller)

	fx.sellerUC.EXPECT().Stats(mock.Anything, fx.actor.UserID).Return(&entity.SellerStats{
		TotalProducts: 14,
		PendingOrders: 2,
		TotalRevenue:  decimal.RequireFromString("1520.50"),
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/sellers/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[entity.SellerStats](t, rec)
	assert.Equal(t, int64(14), got.TotalProducts)
	assert.True(t, got.TotalRevenue.Equal(decimal.RequireFromString("1520.50")))
}

func TestSellerHandler_ListSellers_Filter(t *testing.T) {
	fx := createTestSellerHandler(t, entity.RoleAdmin)
	verified := false

	fx.sellerUC.EXPECT().ListSellers(mock.Anything,
		repository.SellerFilter{Status: entity.SellerStatusPending, IsVerified: &verified},
		entity.Pagination{Page: 1, Limit: 12},
	).Return(entity.NewPage([]*entity.Seller{}, 0, entity.Pagination{Page: 1, Limit: 12}), nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/sellers?status=pending&is_verified=false", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSellerHandler_Approve_IllegalTransition(t *testing.T) {
	fx := createTestSellerHandler(t, entity.RoleAdmin)
	sellerID := uuid.New()

	fx.sellerUC.EXPECT().ApproveSeller(mock.Anything, sellerID).
		Return(nil, errors.WithStack(domainerrors.ErrIllegalSellerTransition))

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/sellers/"+sellerID.String()+"/approve", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ILLEGAL_SELLER_TRANSITION", decodeEnvelope(t, rec).Code)
}

func TestSellerHandler_Reject(t *testing.T) {
	sellerID := uuid.New()

	t.Run("reason is required", func(t *testing.T) {
		fx := createTestSellerHandler(t, entity.RoleAdmin)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/sellers/"+sellerID.String()+"/reject", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "is required", decodeEnvelope(t, rec).Details["reason"])
	})

	t.Run("records the reason", func(t *testing.T) {
		fx := createTestSellerHandler(t, entity.RoleAdmin)
		fx.sellerUC.EXPECT().RejectSeller(mock.Anything, sellerID, "missing tax documents").
			Return(&entity.Seller{ID: sellerID, Status: entity.SellerStatusRejected, RejectionReason: "missing tax documents"}, nil)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/sellers/"+sellerID.String()+"/reject", `{"reason":"missing tax documents"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "missing tax documents", decodeData[entity.Seller](t, rec).RejectionReason)
	})
}

func TestSellerHandler_CreateReview(t *testing.T) {
	fx := createTestSellerHandler(t, entity.RoleCustomer)
	sellerID := uuid.New()

	fx.sellerUC.EXPECT().CreateSellerReview(mock.Anything, fx.actor.UserID, sellerID, &usecase.CreateSellerReviewInput{
		Rating:  5,
		Comment: "Fast shipping",
	}).Return(&entity.SellerReview{ID: uuid.New(), SellerID: sellerID, Rating: 5}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/sellers/"+sellerID.String()+"/reviews", `{"rating":5,"comment":"Fast shipping"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
