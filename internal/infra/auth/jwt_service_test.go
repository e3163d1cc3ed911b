package auth

import (
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newFrozenService(t *testing.T, cfg *config.Config, at time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	impl := svc.(*jwtService)
	impl.now = func() time.Time { return at }

	return impl
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	issuedAt := time.Now().Truncate(time.Second)
	svc := newFrozenService(t, newTestConfig(), issuedAt)
	userID := uuid.New()

	pair, err := svc.Issue(userID, "seller")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, issuedAt.Add(15*time.Minute), pair.AccessExpiresAt)
	assert.Equal(t, issuedAt.Add(7*24*time.Hour), pair.RefreshExpiresAt)

	access, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, access.UserID)
	assert.Equal(t, "seller", access.Role)
	assert.Equal(t, service.TokenTypeAccess, access.Type)

	refresh, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refresh.UserID)
	assert.Empty(t, refresh.Role)
	assert.Equal(t, service.TokenTypeRefresh, refresh.Type)
}

func TestJWTService_ConfiguredLifetimes(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.AccessTokenTTL = 5 * time.Minute
	cfg.Auth.RefreshTokenTTL = 48 * time.Hour
	issuedAt := time.Now().Truncate(time.Second)

	pair, err := newFrozenService(t, cfg, issuedAt).Issue(uuid.New(), "customer")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(5*time.Minute), pair.AccessExpiresAt)
	assert.Equal(t, issuedAt.Add(48*time.Hour), pair.RefreshExpiresAt)
}

func TestJWTService_RefreshTokensAreUnique(t *testing.T) {
	svc := newFrozenService(t, newTestConfig(), time.Now())
	userID := uuid.New()

	first, err := svc.Issue(userID, "customer")
	require.NoError(t, err)
	second, err := svc.Issue(userID, "customer")
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	svc := newFrozenService(t, newTestConfig(), time.Now())

	forge := func(secret string, claims service.Claims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return signed
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format", wantErr: "failed to parse token structure"},
		{
			name: "foreign signature",
			token: forge("some-other-secret", service.Claims{Type: service.TokenTypeAccess, Role: "admin",
				RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer, ExpiresAt: future}}),
			wantErr: "invalid token",
		},
		{
			name: "access claims signed with refresh secret",
			token: forge("test_refresh_secret_key_very_long_for_testing", service.Claims{Type: service.TokenTypeAccess, Role: "admin",
				RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer, ExpiresAt: future}}),
			wantErr: "invalid token",
		},
		{
			name: "unknown type",
			token: forge("test_access_secret_key_very_long_for_testing", service.Claims{Type: "api-key",
				RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer, ExpiresAt: future}}),
			wantErr: "invalid token",
		},
		{
			name: "no expiry",
			token: forge("test_access_secret_key_very_long_for_testing", service.Claims{Type: service.TokenTypeAccess,
				RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer}}),
			wantErr: "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := newFrozenService(t, newTestConfig(), time.Now().Add(-time.Hour))
	pair, err := svc.Issue(uuid.New(), "customer")
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Verify(pair.AccessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
