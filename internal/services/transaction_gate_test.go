package services

import (
	"context"
	"testing"

	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFundedWallets(t *testing.T, env *testEnv) (*models.Token, *models.Wallet, *models.Wallet) {
	t.Helper()

	account := env.createAccount(t, "master_account")
	token := env.createToken(t, account, "OMG")
	_, _, err := env.mintGate.Insert(context.Background(), MintRequest{
		IdempotencyToken: "seed-mint",
		TokenID:          token.ExternalID,
		Amount:           1_000,
	})
	require.NoError(t, err)

	accountWallet, err := env.wallets.GetOrCreatePrimaryForAccount(account)
	require.NoError(t, err)
	_, userWallet := env.createProviderUser(t, "alice")

	return token, accountWallet, userWallet
}

func TestTransactionGate_Create(t *testing.T) {
	env := setupTestEnv(t)
	token, from, to := setupFundedWallets(t, env)

	transfer, err := env.txGate.Create(context.Background(), TransferRequest{
		IdempotencyToken: "tx-1",
		FromAddress:      from.Address,
		ToAddress:        to.Address,
		TokenID:          token.ExternalID,
		Amount:           300,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransferConfirmed, transfer.Status)

	fromBalance, _ := env.wallets.GetBalance(from.Address, token.ExternalID)
	toBalance, _ := env.wallets.GetBalance(to.Address, token.ExternalID)
	assert.Equal(t, int64(700), fromBalance)
	assert.Equal(t, int64(300), toBalance)
}

func TestTransactionGate_InsufficientFunds(t *testing.T) {
	env := setupTestEnv(t)
	token, from, to := setupFundedWallets(t, env)

	transfer, err := env.txGate.Create(context.Background(), TransferRequest{
		IdempotencyToken: "tx-1",
		FromAddress:      to.Address,
		ToAddress:        from.Address,
		TokenID:          token.ExternalID,
		Amount:           1,
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	require.NotNil(t, transfer)
	assert.Equal(t, models.TransferFailed, transfer.Status)
	assert.Equal(t, "insufficient_funds", transfer.ErrorCode)

	again, err := env.txGate.Create(context.Background(), TransferRequest{
		IdempotencyToken: "tx-1",
		FromAddress:      to.Address,
		ToAddress:        from.Address,
		TokenID:          token.ExternalID,
		Amount:           1,
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, transfer.ID, again.ID)
}

func TestTransactionGate_Idempotent(t *testing.T) {
	env := setupTestEnv(t)
	token, from, to := setupFundedWallets(t, env)

	req := TransferRequest{
		IdempotencyToken: "tx-1",
		FromAddress:      from.Address,
		ToAddress:        to.Address,
		TokenID:          token.ExternalID,
		Amount:           100,
	}
	first, err := env.txGate.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := env.txGate.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	toBalance, _ := env.wallets.GetBalance(to.Address, token.ExternalID)
	assert.Equal(t, int64(100), toBalance)
}

func TestTransactionGate_Validation(t *testing.T) {
	env := setupTestEnv(t)
	token, from, to := setupFundedWallets(t, env)

	tests := []struct {
		name string
		req  TransferRequest
		err  error
	}{
		{"missing idempotency token", TransferRequest{FromAddress: from.Address, ToAddress: to.Address, TokenID: token.ExternalID, Amount: 1}, ErrIdempotencyTokenRequired},
		{"zero amount", TransferRequest{IdempotencyToken: "a", FromAddress: from.Address, ToAddress: to.Address, TokenID: token.ExternalID}, ErrInvalidAmount},
		{"same address", TransferRequest{IdempotencyToken: "b", FromAddress: from.Address, ToAddress: from.Address, TokenID: token.ExternalID, Amount: 1}, ErrSameAddress},
		{"unknown wallet", TransferRequest{IdempotencyToken: "c", FromAddress: from.Address, ToAddress: "nowhere", TokenID: token.ExternalID, Amount: 1}, ErrWalletNotFound},
		{"unknown token", TransferRequest{IdempotencyToken: "d", FromAddress: from.Address, ToAddress: to.Address, TokenID: "tok_X_1", Amount: 1}, ErrTokenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.txGate.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTransactionGate_IdempotencyConflict(t *testing.T) {
	env := setupTestEnv(t)
	token, from, to := setupFundedWallets(t, env)

	_, err := env.txGate.Create(context.Background(), TransferRequest{
		IdempotencyToken: "tx-1",
		FromAddress:      from.Address,
		ToAddress:        to.Address,
		TokenID:          token.ExternalID,
		Amount:           100,
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  TransferRequest
	}{
		{"different amount", TransferRequest{IdempotencyToken: "tx-1", FromAddress: from.Address, ToAddress: to.Address, TokenID: token.ExternalID, Amount: 5}},
		{"reversed addresses", TransferRequest{IdempotencyToken: "tx-1", FromAddress: to.Address, ToAddress: from.Address, TokenID: token.ExternalID, Amount: 100}},
		{"token used by a mint", TransferRequest{IdempotencyToken: "seed-mint", FromAddress: from.Address, ToAddress: to.Address, TokenID: token.ExternalID, Amount: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer, err := env.txGate.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrIdempotencyConflict)
			assert.Nil(t, transfer)
		})
	}

	toBalance, _ := env.wallets.GetBalance(to.Address, token.ExternalID)
	assert.Equal(t, int64(100), toBalance)
}
