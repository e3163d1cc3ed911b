package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	roleRepo         *mockRepo.MockRoleRepository
	authRepo         *mockRepo.MockAuthRepository
	sellerRepo       *mockRepo.MockSellerRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	mailer           *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		roleRepo:         mockRepo.NewMockRoleRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		sellerRepo:       mockRepo.NewMockSellerRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		mailer:           mockSvc.NewMockMailer(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		AuthRepo:         fx.authRepo,
		SellerRepo:       fx.sellerRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Mailer:           fx.mailer,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})
	srv.(*authService).clock = fixedClock()
	fx.service = srv

	return fx
}

func testTokenPair() *service.TokenPair {
	return &service.TokenPair{
		AccessToken:      "access-token",
		AccessExpiresAt:  testNow.Add(15 * time.Minute),
		RefreshToken:     "refresh-token",
		RefreshExpiresAt: testNow.Add(7 * 24 * time.Hour),
	}
}

// expectSessionIssued covers the token generation and refresh token storage of issueSession.
func (fx authServiceFixtures) expectSessionIssued(userID uuid.UUID, role string, existing []*entity.RefreshToken) {
	fx.tokenService.EXPECT().Issue(userID, role).Return(testTokenPair(), nil).Once()

	expectTx(fx.txManager, fx.factory).Once()
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().ListActiveByUser(mock.Anything, userID, mock.Anything).Return(existing, nil).Once()
	fx.refreshTokenRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
			return tok.UserID == userID && tok.TokenHash == util.HashToken("refresh-token")
		})).
		Return(nil).Once()
}

func customerUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		IsActive:  true,
		Role:      &entity.Role{ID: uuid.New(), Name: entity.RoleCustomer},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, 5)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "  Ada@Example.com ",
		Password:  "secret1",
	}
	customerRole := &entity.Role{ID: uuid.New(), Name: entity.RoleCustomer}

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	expectTx(fx.txManager, fx.factory).Once()
	fx.factory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.factory.EXPECT().NewRoleRepository().Return(fx.roleRepo)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ada@example.com").
		Return(nil, repository.ErrAuthNotFound)
	fx.roleRepo.EXPECT().FindByName(mock.Anything, entity.RoleCustomer).Return(customerRole, nil)
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ada@example.com" && u.RoleID == customerRole.ID && u.EmailVerificationDigest != "" && !u.IsEmailVerified
		})).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.PasswordHash == "hashed" && a.ProviderUserID == "ada@example.com"
		})).
		Return(nil)

	// Mail failure must not fail registration.
	fx.mailer.EXPECT().
		SendVerificationEmail(mock.Anything, "ada@example.com", "Ada Lovelace", mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), "customer").Return(testTokenPair(), nil)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	expectTx(fx.txManager, fx.factory).Once()
	fx.refreshTokenRepo.EXPECT().ListActiveByUser(mock.Anything, mock.AnythingOfType("uuid.UUID"), mock.Anything).Return(nil, nil)
	fx.refreshTokenRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.RoleName())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, 5)

	ctx := context.Background()
	input := &usecase.RegisterInput{FirstName: "Ada", Email: "ada@example.com", Password: "secret1"}

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t, 5)

	fx.hasher.EXPECT().ValidatePasswordStrength("123").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@b.c", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login_SellerGate(t *testing.T) {
	tests := []struct {
		name      string
		seller    *entity.Seller
		sellerErr error
		wantErr   error
		details   string
	}{
		{
			name:      "customer without seller profile",
			sellerErr: repository.ErrSellerNotFound,
		},
		{
			name:   "approved seller",
			seller: &entity.Seller{Status: entity.SellerStatusApproved},
		},
		{
			name:    "pending seller",
			seller:  &entity.Seller{Status: entity.SellerStatusPending},
			wantErr: domainerrors.ErrSellerPending,
		},
		{
			name:    "rejected seller carries reason",
			seller:  &entity.Seller{Status: entity.SellerStatusRejected, RejectionReason: "missing tax documents"},
			wantErr: domainerrors.ErrSellerRejected,
			details: "missing tax documents",
		},
		{
			name:    "suspended seller",
			seller:  &entity.Seller{Status: entity.SellerStatusSuspended},
			wantErr: domainerrors.ErrSellerSuspended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, 5)
			ctx := context.Background()
			user := customerUser()

			fx.authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
				Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
			fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
			fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			fx.sellerRepo.EXPECT().FindByUserID(ctx, user.ID).Return(tt.seller, tt.sellerErr)

			if tt.wantErr == nil {
				fx.userRepo.EXPECT().
					Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
						return u.LastLogin != nil && u.LastLogin.Equal(testNow)
					})).
					Return(nil)
				fx.expectSessionIssued(user.ID, "customer", nil)
			}

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "access-token", output.AccessToken)

				return
			}

			assert.Nil(t, output)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.details != "" {
				var appErr *domainerrors.BaseError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.details, appErr.Details())
			}
		})
	}
}

func TestAuthService_Login_AdminSkipsSellerGate(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	user := customerUser()
	user.Role = &entity.Role{ID: uuid.New(), Name: entity.RoleAdmin}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.expectSessionIssued(user.ID, "admin", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, 5)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, 5)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ada@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		fx := createTestAuthService(t, 5)
		user := customerUser()
		user.IsActive = false
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, user.Email).
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})
}

func TestAuthService_SessionLimit_PrunesOldest(t *testing.T) {
	fx := createTestAuthService(t, 2)
	ctx := context.Background()
	user := customerUser()
	user.Role = &entity.Role{ID: uuid.New(), Name: entity.RoleSupport}

	existing := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: user.ID, CreatedAt: testNow.Add(-3 * time.Hour)},
		{ID: uuid.New(), UserID: user.ID, CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: uuid.New(), UserID: user.ID, CreatedAt: testNow.Add(-1 * time.Hour)},
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.expectSessionIssued(user.ID, "support", existing)

	// Three stored, limit two: the two oldest go so the new one makes two.
	fx.refreshTokenRepo.EXPECT().Delete(mock.Anything, existing[0].ID).Return(nil).Once()
	fx.refreshTokenRepo.EXPECT().Delete(mock.Anything, existing[1].ID).Return(nil).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
}

func TestAuthService_Login_RecordsClient(t *testing.T) {
	fx := createTestAuthService(t, 0)
	user := customerUser()
	ctx := deliverycontext.WithClient(context.Background(), deliverycontext.Client{
		IP:        "203.0.113.7",
		UserAgent: "MarketApp/2.1 (iOS)",
	})

	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(mock.Anything, user).Return(nil)
	fx.tokenService.EXPECT().Issue(user.ID, "customer").Return(testTokenPair(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
			return tok.ClientIP == "203.0.113.7" &&
				tok.UserAgent == "MarketApp/2.1 (iOS)" &&
				tok.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
		})).
		Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	user := customerUser()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: util.HashToken("old-refresh"),
		ExpiresAt: testNow.Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		Verify("old-refresh").
		Return(&service.Claims{UserID: user.ID, Role: "customer", Type: service.TokenTypeRefresh}, nil)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.refreshTokenRepo.EXPECT().FindByHash(mock.Anything, util.HashToken("old-refresh")).Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().Delete(mock.Anything, stored.ID).Return(nil).Once()
	fx.expectSessionIssued(user.ID, "customer", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_RefreshToken_Expired(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: userID, ExpiresAt: testNow.Add(-time.Minute)}

	fx.tokenService.EXPECT().
		Verify("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().FindByHash(mock.Anything, util.HashToken("old-refresh")).Return(stored, nil)
	fx.refreshTokenRepo.EXPECT().Delete(mock.Anything, stored.ID).Return(nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t, 5)

	fx.tokenService.EXPECT().
		Verify("access").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestAuthService(t, 5)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := fx.service.ForgotPassword(context.Background(), "Ghost@Example.com")
	assert.NoError(t, err)
}

func TestAuthService_ForgotPassword_StoresDigestAndMails(t *testing.T) {
	fx := createTestAuthService(t, 5)
	user := customerUser()

	var mailedToken string
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.userRepo.EXPECT().Update(mock.Anything, user).Return(nil)
	fx.mailer.EXPECT().
		SendPasswordReset(mock.Anything, user.Email, "Ada Lovelace", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _, token string) { mailedToken = token }).
		Return(nil)

	require.NoError(t, fx.service.ForgotPassword(context.Background(), user.Email))
	assert.Equal(t, util.HashToken(mailedToken), user.PasswordResetDigest)
	require.NotNil(t, user.PasswordResetExpiry)
	assert.Equal(t, testNow.Add(defaultResetTokenTTL), *user.PasswordResetExpiry)
}

func TestAuthService_ResetPassword_RevokesSessions(t *testing.T) {
	fx := createTestAuthService(t, 5)
	user := customerUser()
	expiry := testNow.Add(5 * time.Minute)
	user.PasswordResetDigest = util.HashToken("reset-token")
	user.PasswordResetExpiry = &expiry

	fx.hasher.EXPECT().ValidatePasswordStrength("newpass").Return(nil)
	fx.userRepo.EXPECT().FindByResetDigest(mock.Anything, util.HashToken("reset-token")).Return(user, nil)
	fx.hasher.EXPECT().Hash("newpass").Return("new-hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.authRepo.EXPECT().UpdatePasswordHash(mock.Anything, user.ID, "new-hash").Return(nil)
	fx.userRepo.EXPECT().Update(mock.Anything, user).Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteByUser(mock.Anything, user.ID).Return(int64(2), nil)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "reset-token", Password: "newpass"})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordResetDigest)
	assert.Nil(t, user.PasswordResetExpiry)
}

func TestAuthService_VerifyEmail_Expired(t *testing.T) {
	fx := createTestAuthService(t, 5)
	user := customerUser()
	expiry := testNow.Add(-time.Second)
	user.EmailVerificationExpiry = &expiry

	fx.userRepo.EXPECT().FindByVerificationDigest(mock.Anything, util.HashToken("tok")).Return(user, nil)

	err := fx.service.VerifyEmail(context.Background(), "tok")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, user.IsEmailVerified)
}

func TestAuthService_Logout_OtherUsersToken(t *testing.T) {
	fx := createTestAuthService(t, 5)

	fx.refreshTokenRepo.EXPECT().
		FindByHash(mock.Anything, util.HashToken("tok")).
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: uuid.New()}, nil)

	err := fx.service.Logout(context.Background(), &usecase.LogoutInput{UserID: uuid.New(), RefreshToken: "tok"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
