package handlers

import (
	"time"

	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/models"
)

type UserResponse struct {
	Object         string          `json:"object" example:"user"`
	ID             string          `json:"id"`
	ProviderUserID *string         `json:"provider_user_id"`
	Username       *string         `json:"username"`
	Email          *string         `json:"email"`
	Metadata       models.Metadata `json:"metadata"`
	CreatedAt      time.Time       `json:"created_at"`
}

type TokenResponse struct {
	Object        string `json:"object" example:"token"`
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	SubunitToUnit int64  `json:"subunit_to_unit"`
}

type BalanceResponse struct {
	Object string        `json:"object" example:"balance"`
	Token  TokenResponse `json:"token"`
	Amount int64         `json:"amount"`
}

type WalletResponse struct {
	Object     string            `json:"object" example:"wallet"`
	Address    string            `json:"address"`
	Name       string            `json:"name"`
	Identifier string            `json:"identifier"`
	Balances   []BalanceResponse `json:"balances"`
}

type TransferResponse struct {
	Object           string          `json:"object" example:"transaction"`
	ID               string          `json:"id"`
	IdempotencyToken string          `json:"idempotency_token"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	TokenID          string          `json:"token_id"`
	Amount           int64           `json:"amount"`
	Status           string          `json:"status"`
	ErrorCode        string          `json:"error_code,omitempty"`
	Metadata         models.Metadata `json:"metadata"`
	CreatedAt        time.Time       `json:"created_at"`
}

type MintResponse struct {
	Object      string            `json:"object" example:"mint"`
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Amount      int64             `json:"amount"`
	Confirmed   bool              `json:"confirmed"`
	Token       TokenResponse     `json:"token"`
	Transaction *TransferResponse `json:"transaction"`
}

type MembershipResponse struct {
	Object  string `json:"object" example:"membership"`
	Account string `json:"account_id"`
	Name    string `json:"account_name"`
	Role    string `json:"role"`
}

func serializeUser(user *models.User) UserResponse {
	return UserResponse{
		Object:         "user",
		ID:             user.ExternalID,
		ProviderUserID: user.ProviderUserID,
		Username:       user.Username,
		Email:          user.Email,
		Metadata:       user.Metadata,
		CreatedAt:      user.CreatedAt,
	}
}

func serializeToken(token *models.Token) TokenResponse {
	return TokenResponse{
		Object:        "token",
		ID:            token.ExternalID,
		Symbol:        token.Symbol,
		Name:          token.Name,
		SubunitToUnit: token.SubunitToUnit,
	}
}

func serializeWallet(wallet *models.Wallet, balances []ledger.Balance, tokens map[string]*models.Token) WalletResponse {
	out := WalletResponse{
		Object:     "wallet",
		Address:    wallet.Address,
		Name:       wallet.Name,
		Identifier: wallet.Identifier,
		Balances:   make([]BalanceResponse, 0, len(balances)),
	}
	for _, balance := range balances {
		token, ok := tokens[balance.TokenID]
		if !ok {
			continue
		}
		out.Balances = append(out.Balances, BalanceResponse{
			Object: "balance",
			Token:  serializeToken(token),
			Amount: balance.Amount,
		})
	}
	return out
}

func serializeTransfer(transfer *models.Transfer) *TransferResponse {
	if transfer == nil {
		return nil
	}
	return &TransferResponse{
		Object:           "transaction",
		ID:               transfer.ExternalID,
		IdempotencyToken: transfer.IdempotencyToken,
		From:             transfer.FromAddress,
		To:               transfer.ToAddress,
		TokenID:          transfer.Token.ExternalID,
		Amount:           transfer.Amount,
		Status:           transfer.Status,
		ErrorCode:        transfer.ErrorCode,
		Metadata:         transfer.Metadata,
		CreatedAt:        transfer.CreatedAt,
	}
}

func serializeMint(mint *models.Mint, transfer *models.Transfer) MintResponse {
	return MintResponse{
		Object:      "mint",
		ID:          mint.ExternalID,
		Description: mint.Description,
		Amount:      mint.Amount,
		Confirmed:   mint.Confirmed,
		Token:       serializeToken(&mint.Token),
		Transaction: serializeTransfer(transfer),
	}
}

func serializeMembership(membership *models.Membership) MembershipResponse {
	return MembershipResponse{
		Object:  "membership",
		Account: membership.Account.ExternalID,
		Name:    membership.Account.Name,
		Role:    membership.Role.Name,
	}
}

type AuthTokenResponse struct {
	Object              string       `json:"object" example:"authentication_token"`
	AuthenticationToken string       `json:"authentication_token"`
	UserID              string       `json:"user_id"`
	User                UserResponse `json:"user"`
	ExpiresAt           time.Time    `json:"expires_at"`
}

func serializeAuthToken(token *models.AuthToken) AuthTokenResponse {
	return AuthTokenResponse{
		Object:              "authentication_token",
		AuthenticationToken: token.Token,
		UserID:              token.User.ExternalID,
		User:                serializeUser(&token.User),
		ExpiresAt:           token.ExpiresAt,
	}
}
