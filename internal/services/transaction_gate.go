package services

import (
	"context"
	"errors"

	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
	"gorm.io/gorm"
)

const errorCodeInsufficientFunds = "insufficient_funds"

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSameAddress         = errors.New("cannot transfer to the same address")
	ErrIdempotencyConflict = errors.New("idempotency token already used for a different request")
)

type TransferRequest struct {
	IdempotencyToken string          `json:"idempotency_token"`
	FromAddress      string          `json:"from_address"`
	ToAddress        string          `json:"to_address"`
	TokenID          string          `json:"token_id"`
	Amount           int64           `json:"amount"`
	Metadata         models.Metadata `json:"metadata"`
}

// TransactionGate moves funds between two wallets.
type TransactionGate struct {
	transferRepo *repository.TransferRepository
	walletRepo   *repository.WalletRepository
	tokenRepo    *repository.TokenRepository
	ledger       *ledger.Ledger
	db           *gorm.DB
}

func NewTransactionGate(
	transferRepo *repository.TransferRepository,
	walletRepo *repository.WalletRepository,
	tokenRepo *repository.TokenRepository,
	l *ledger.Ledger,
	db *gorm.DB,
) *TransactionGate {
	return &TransactionGate{
		transferRepo: transferRepo,
		walletRepo:   walletRepo,
		tokenRepo:    tokenRepo,
		ledger:       l,
		db:           db,
	}
}

// Create records a transfer and applies it to the ledger. When the sender
// cannot cover the amount the transfer is kept with status failed and
// ErrInsufficientFunds is returned alongside it. A repeated idempotency token
// returns the transfer recorded the first time, or ErrIdempotencyConflict
// when that transfer does not match the request.
func (g *TransactionGate) Create(ctx context.Context, req TransferRequest) (*models.Transfer, error) {
	if req.IdempotencyToken == "" {
		return nil, ErrIdempotencyTokenRequired
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.FromAddress == req.ToAddress {
		return nil, ErrSameAddress
	}

	existing, err := g.transferRepo.FindByIdempotencyToken(req.IdempotencyToken)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.Matches(req.FromAddress, req.ToAddress, req.TokenID, req.Amount) {
			return nil, ErrIdempotencyConflict
		}
		return existing, statusError(existing)
	}

	for _, address := range []string{req.FromAddress, req.ToAddress} {
		wallet, err := g.walletRepo.FindByAddress(address)
		if err != nil {
			return nil, err
		}
		if wallet == nil {
			return nil, ErrWalletNotFound
		}
	}

	token, err := g.tokenRepo.FindByExternalID(req.TokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}

	transfer := &models.Transfer{
		IdempotencyToken: req.IdempotencyToken,
		FromAddress:      req.FromAddress,
		ToAddress:        req.ToAddress,
		TokenID:          token.ID,
		Amount:           req.Amount,
		Metadata:         req.Metadata,
	}

	db := g.db.WithContext(ctx)
	if err := g.transferRepo.Create(db, transfer); err != nil {
		return nil, err
	}

	entry := &ledger.Entry{
		IdempotencyToken: req.IdempotencyToken,
		FromAddress:      req.FromAddress,
		ToAddress:        req.ToAddress,
		TokenID:          token.ExternalID,
		Amount:           req.Amount,
	}

	ledgerErr := g.ledger.Record(entry)
	switch {
	case ledgerErr == nil, errors.Is(ledgerErr, ledger.ErrDuplicateEntry):
		transfer.Status = models.TransferConfirmed
	case errors.Is(ledgerErr, ledger.ErrInsufficientFunds):
		transfer.Status = models.TransferFailed
		transfer.ErrorCode = errorCodeInsufficientFunds
	default:
		transfer.Status = models.TransferFailed
		transfer.ErrorCode = "ledger_error"
	}

	if err := db.Save(transfer).Error; err != nil {
		return nil, err
	}
	transfer.Token = *token

	if transfer.Status == models.TransferConfirmed {
		return transfer, nil
	}
	if transfer.ErrorCode == errorCodeInsufficientFunds {
		return transfer, ErrInsufficientFunds
	}
	return transfer, ledgerErr
}

// History lists the transfers sent or received by address, newest first.
func (g *TransactionGate) History(address string) ([]models.Transfer, error) {
	return g.transferRepo.FindByAddress(address)
}

func statusError(transfer *models.Transfer) error {
	if transfer.Status == models.TransferFailed && transfer.ErrorCode == errorCodeInsufficientFunds {
		return ErrInsufficientFunds
	}
	return nil
}
