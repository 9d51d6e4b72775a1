package testharness

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
	"github.com/stretchr/testify/require"
)

// InsertToken defines a token owned by the fixture account.
func (c *Case) InsertToken(symbol string) *models.Token {
	t := c.t
	t.Helper()

	token, err := c.Services.Tokens.Create(c.Account, services.TokenInput{
		Symbol:        symbol,
		Name:          symbol,
		SubunitToUnit: 100,
	})
	require.NoError(t, err)
	return token
}

// Mint creates amount whole units of token and fails the test unless the
// mint is confirmed.
func (c *Case) Mint(token *models.Token, amount int64) (*models.Mint, *models.Transfer) {
	t := c.t
	t.Helper()

	mint, transfer, err := c.Services.MintGate.Insert(context.Background(), services.MintRequest{
		IdempotencyToken: uuid.NewString(),
		TokenID:          token.ExternalID,
		Amount:           amount * token.SubunitToUnit,
		Description:      fmt.Sprintf("Minting %d %s", amount, token.Symbol),
		Metadata:         models.Metadata{},
	})
	require.NoError(t, err)
	require.True(t, mint.Confirmed, "mint %s is not confirmed", mint.ExternalID)
	return mint, transfer
}

// Transfer moves amount subunits of token between two addresses and fails the
// test unless it is confirmed.
func (c *Case) Transfer(from, to string, token *models.Token, amount int64) *models.Transfer {
	t := c.t
	t.Helper()

	transfer, err := c.Services.TransactionGate.Create(context.Background(), services.TransferRequest{
		IdempotencyToken: uuid.NewString(),
		FromAddress:      from,
		ToAddress:        to,
		TokenID:          token.ExternalID,
		Amount:           amount,
		Metadata:         models.Metadata{},
	})
	require.NoError(t, err)
	require.True(t, transfer.Confirmed(), "transfer %s is %s", transfer.ExternalID, transfer.Status)
	return transfer
}
