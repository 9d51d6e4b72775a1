package services

import (
	"testing"
	"time"

	"github.com/h4ks-com/ewallet/internal/auth"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_AuthenticateProvider(t *testing.T) {
	env := setupTestEnv(t)
	account := env.createAccount(t, "master_account")

	hash, err := auth.HashSecret("secret")
	require.NoError(t, err)
	require.NoError(t, env.keyRepo.Create(&models.Key{
		AccountID:     account.ID,
		AccessKey:     "access",
		SecretKeyHash: hash,
	}))

	got, err := env.auth.AuthenticateProvider("access", "secret")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	_, err = env.auth.AuthenticateProvider("access", "wrong")
	assert.ErrorIs(t, err, ErrInvalidAccessKey)

	_, err = env.auth.AuthenticateProvider("unknown", "secret")
	assert.ErrorIs(t, err, ErrInvalidAccessKey)
}

func TestAuthService_AuthenticateClient(t *testing.T) {
	env := setupTestEnv(t)
	account := env.createAccount(t, "master_account")
	user, _ := env.createProviderUser(t, "alice")

	require.NoError(t, env.apiKeyRepo.Create(&models.APIKey{
		AccountID: account.ID,
		Key:       "api-key",
		OwnerApp:  models.OwnerAppEWalletAPI,
	}))

	token, err := env.authTokens.Generate(user, models.OwnerAppEWalletAPI)
	require.NoError(t, err)

	got, err := env.auth.AuthenticateClient("api-key", token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = env.auth.AuthenticateClient("wrong", token.Token)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)

	_, err = env.auth.AuthenticateClient("api-key", "nope")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthTokenService_OpaqueToken(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createProviderUser(t, "alice")

	require.NoError(t, env.authTokenRepo.Create(&models.AuthToken{
		UserID:    user.ID,
		Token:     "plain-token",
		OwnerApp:  models.OwnerAppEWalletAPI,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	got, err := env.authTokens.Authenticate("plain-token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthTokenService_Expired(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createProviderUser(t, "alice")

	require.NoError(t, env.authTokenRepo.Create(&models.AuthToken{
		UserID:    user.ID,
		Token:     "old-token",
		OwnerApp:  models.OwnerAppEWalletAPI,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := env.authTokens.Authenticate("old-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthTokenService_Revoke(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createProviderUser(t, "alice")

	token, err := env.authTokens.Generate(user, models.OwnerAppEWalletAPI)
	require.NoError(t, err)
	require.NoError(t, env.authTokens.Revoke(token.Token))

	_, err = env.authTokens.Authenticate(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
