package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	emailTokenBytes             = 32
	defaultVerificationTokenTTL = 24 * time.Hour
	defaultResetTokenTTL        = 10 * time.Minute
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager            repository.TransactionManager
	userRepo             repository.UserRepository
	authRepo             repository.AuthRepository
	sellerRepo           repository.SellerRepository
	refreshTokenRepo     repository.RefreshTokenRepository
	hasher               service.PasswordHasher
	tokenService         service.TokenService
	mailer               service.Mailer
	maxActiveSessions    int
	requireVerification  bool
	verificationTokenTTL time.Duration
	resetTokenTTL        time.Duration
	logger               *slog.Logger
	clock                clock
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	SellerRepo       repository.SellerRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:            params.TxManager,
		userRepo:             params.UserRepo,
		authRepo:             params.AuthRepo,
		sellerRepo:           params.SellerRepo,
		refreshTokenRepo:     params.RefreshTokenRepo,
		hasher:               params.Hasher,
		tokenService:         params.TokenService,
		mailer:               params.Mailer,
		verificationTokenTTL: defaultVerificationTokenTTL,
		resetTokenTTL:        defaultResetTokenTTL,
		logger:               params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		auth := params.Config.Auth
		srv.maxActiveSessions = auth.MaxActiveSessions
		srv.requireVerification = auth.RequireEmailVerification
		if auth.VerificationTokenTTL > 0 {
			srv.verificationTokenTTL = auth.VerificationTokenTTL
		}
		if auth.ResetTokenTTL > 0 {
			srv.resetTokenTTL = auth.ResetTokenTTL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	verifyToken, err := util.RandomToken(emailTokenBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create verification token")
	}
	now := srv.clock.now()
	expiry := now.Add(srv.verificationTokenTTL)

	newUser := &entity.User{
		ID:                      uuid.New(),
		FirstName:               strings.TrimSpace(input.FirstName),
		LastName:                strings.TrimSpace(input.LastName),
		Email:                   email,
		Phone:                   input.Phone,
		EmailVerificationDigest: util.HashToken(verifyToken),
		EmailVerificationExpiry: &expiry,
		IsActive:                true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		if _, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		} else if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		role, err := repoFactory.NewRoleRepository().FindByName(ctx, entity.RoleCustomer)
		if err != nil {
			return translate(err, "failed to load customer role")
		}
		newUser.RoleID = role.ID
		newUser.Role = role

		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	if err := srv.mailer.SendVerificationEmail(ctx, newUser.Email, newUser.FullName(), verifyToken); err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.Any("userID", newUser.ID), slog.Any("error", err))
	}

	output, err := srv.issueSession(ctx, newUser)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login checks the credentials and the account gates, then issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, translate(err, "failed to load login user")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login failed")
	}
	if err := srv.checkSellerGate(ctx, user); err != nil {
		srv.log(ctx).Warn("Login blocked by seller status", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}
	if srv.requireVerification && !user.IsEmailVerified {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized.WithMessage("Please verify your email before logging in"), "login failed")
	}

	now := srv.clock.now()
	user.LastLogin = &now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}

	output, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// checkSellerGate rejects customers and sellers whose seller profile is not approved.
// Staff roles are never gated.
func (srv *authService) checkSellerGate(ctx context.Context, user *entity.User) error {
	role := user.RoleName()
	if role != entity.RoleCustomer && role != entity.RoleSeller {
		return nil
	}

	seller, err := srv.sellerRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load seller profile")
	}
	if !seller.BlocksLogin() {
		return nil
	}

	switch seller.Status {
	case entity.SellerStatusPending:
		return errors.Wrap(domainerrors.ErrSellerPending, "login failed")
	case entity.SellerStatusRejected:
		if seller.RejectionReason != "" {
			return errors.Wrap(domainerrors.ErrSellerRejected.WithDetails(seller.RejectionReason), "login failed")
		}

		return errors.Wrap(domainerrors.ErrSellerRejected, "login failed")
	default:
		return errors.Wrap(domainerrors.ErrSellerSuspended, "login failed")
	}
}

// issueSession mints a token pair and stores the refresh token digest.
func (srv *authService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	pair, err := srv.tokenService.Issue(user.ID, user.RoleName().String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.storeRefreshToken(ctx, repoFactory.NewRefreshTokenRepository(), user.ID, pair)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return authOutput(user, pair), nil
}

func authOutput(user *entity.User, pair *service.TokenPair) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		AccessToken:     pair.AccessToken,
		AccessExpiresAt: pair.AccessExpiresAt,
		RefreshToken:    pair.RefreshToken,
		User:            user,
	}
}

// storeRefreshToken persists the digest and prunes the oldest sessions beyond the limit.
func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, pair *service.TokenPair) error {
	if srv.maxActiveSessions > 0 {
		existing, err := refreshRepo.ListActiveByUser(ctx, userID, srv.clock.now())
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}
		for i := 0; len(existing)-i >= srv.maxActiveSessions; i++ {
			if err := refreshRepo.Delete(ctx, existing[i].ID); err != nil {
				return errors.Wrap(err, "failed to prune oldest session")
			}
		}
	}

	client := deliverycontext.ClientOf(ctx)

	return refreshRepo.Create(ctx, &entity.RefreshToken{
		UserID:    userID,
		TokenHash: util.HashToken(pair.RefreshToken),
		UserAgent: client.UserAgent,
		ClientIP:  client.IP,
		ExpiresAt: pair.RefreshExpiresAt,
	})
}

// VerifyEmail marks the account holding the token as verified.
func (srv *authService) VerifyEmail(ctx context.Context, token string) error {
	user, err := srv.userRepo.FindByVerificationDigest(ctx, util.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "unknown verification token")
		}

		return errors.Wrap(err, "failed to find user by verification token")
	}
	if user.EmailVerificationExpiry == nil || !srv.clock.now().Before(*user.EmailVerificationExpiry) {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "verification token expired")
	}

	user.IsEmailVerified = true
	user.EmailVerificationDigest = ""
	user.EmailVerificationExpiry = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark email verified")
	}
	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return nil
}

// ResendVerification issues a fresh verification token to an unverified account.
func (srv *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return translate(err, "failed to find user")
	}
	if user.IsEmailVerified {
		return errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "resend verification")
	}

	token, err := util.RandomToken(emailTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to create verification token")
	}
	expiry := srv.clock.now().Add(srv.verificationTokenTTL)
	user.EmailVerificationDigest = util.HashToken(token)
	user.EmailVerificationExpiry = &expiry
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store verification token")
	}

	if err := srv.mailer.SendVerificationEmail(ctx, user.Email, user.FullName(), token); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternalError.WithMessage("Email could not be sent"), err.Error())
	}

	return nil
}

// ForgotPassword mails a short-lived reset token. Unknown emails are not disclosed.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user")
	}

	token, err := util.RandomToken(emailTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to create reset token")
	}
	expiry := srv.clock.now().Add(srv.resetTokenTTL)
	user.PasswordResetDigest = util.HashToken(token)
	user.PasswordResetExpiry = &expiry
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.mailer.SendPasswordReset(ctx, user.Email, user.FullName(), token); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		user.PasswordResetDigest = ""
		user.PasswordResetExpiry = nil
		if clearErr := srv.userRepo.Update(ctx, user); clearErr != nil {
			srv.log(ctx).Error("Failed to clear reset token", slog.Any("userID", user.ID), slog.Any("error", clearErr))
		}

		return errors.Wrap(domainerrors.ErrInternalError.WithMessage("Email could not be sent"), err.Error())
	}

	return nil
}

// ResetPassword sets a new password from a valid reset token and signs out every device.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	user, err := srv.userRepo.FindByResetDigest(ctx, util.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "unknown reset token")
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}
	if user.PasswordResetExpiry == nil || !srv.clock.now().Before(*user.PasswordResetExpiry) {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "reset token expired")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAuthRepository().UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		user.PasswordResetDigest = ""
		user.PasswordResetExpiry = nil
		if err := repoFactory.NewUserRepository().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to clear reset token")
		}

		_, err := repoFactory.NewRefreshTokenRepository().DeleteByUser(ctx, user.ID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}
	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

// RefreshToken rotates the presented refresh token into a new pair.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.Verify(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindByHash(ctx, util.HashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner mismatch")
		}
		if stored.IsExpired(srv.clock.now()) {
			if err := refreshRepo.Delete(ctx, stored.ID); err != nil {
				return errors.Wrap(err, "failed to delete expired refresh token")
			}

			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh token expired")
		}

		user, err := repoFactory.NewUserRepository().FindByID(ctx, stored.UserID)
		if err != nil {
			return translate(err, "failed to find user")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrUserInactive, "refresh rejected")
		}

		if err := refreshRepo.Delete(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke rotated refresh token")
		}

		pair, err := srv.tokenService.Issue(user.ID, user.RoleName().String())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}
		if err := srv.storeRefreshToken(ctx, refreshRepo, user.ID, pair); err != nil {
			return err
		}

		output = authOutput(user, pair)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return output, nil
}

// Logout revokes one refresh token, or every session of the user.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.AllDevices {
		if _, err := srv.refreshTokenRepo.DeleteByUser(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to delete refresh tokens")
		}
		srv.log(ctx).Info("Logged out from all devices", slog.Any("userID", input.UserID))

		return nil
	}

	if input.RefreshToken == "" {
		return nil
	}

	digest := util.HashToken(input.RefreshToken)
	stored, err := srv.refreshTokenRepo.FindByHash(ctx, digest)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != input.UserID {
		return errors.Wrap(domainerrors.ErrForbidden, "refresh token belongs to another user")
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, digest); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", input.UserID))

	return nil
}

// Me returns the caller's account.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	return user, nil
}
