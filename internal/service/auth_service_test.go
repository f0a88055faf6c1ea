package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/config"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
		AdminUser:          "root",
		AdminPass:          "root-pass",
		ShopName:           "Tuck Shop",
		CountryCode:        "92",
	}
}

func parseScope(t *testing.T, tokenString, secret string) string {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	return claims["scope"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	cfg := testConfig()
	svc := NewAuthService(repo, cfg, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.True(t, user.Active)

	// Login works with the username and with the email.
	for _, identity := range []string{"noman", "noman@example.com"} {
		resp, err := svc.Login(ctx, dto.LoginRequest{Identity: identity, Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, 24*3600, resp.ExpiresIn)
		assert.Equal(t, "user", parseScope(t, resp.AccessToken, cfg.JWTSecret))
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testConfig(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	// Same username, different email — and the other way around.
	_, err = svc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "other@example.com", Password: "secret1",
	})
	assert.True(t, errors.Is(err, ErrDuplicateIdentity))
	_, err = svc.Register(ctx, dto.RegisterRequest{
		Username: "other", Email: "noman@example.com", Password: "secret1",
	})
	assert.True(t, errors.Is(err, ErrDuplicateIdentity))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testConfig(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Identity: "noman", Password: "wrong"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	_, err = svc.Login(ctx, dto.LoginRequest{Identity: "ghost", Password: "secret1"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig(), nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(ctx, user.ID, false))

	_, err = svc.Login(ctx, dto.LoginRequest{Identity: "noman", Password: "secret1"})
	assert.True(t, errors.Is(err, ErrAccountDisabled))
}
