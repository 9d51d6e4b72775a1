package services

import (
	"context"
	"errors"

	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrIdempotencyTokenRequired = errors.New("idempotency token is required")
)

type MintRequest struct {
	IdempotencyToken string          `json:"idempotency_token"`
	TokenID          string          `json:"token_id"`
	Amount           int64           `json:"amount"`
	Description      string          `json:"description"`
	Metadata         models.Metadata `json:"metadata"`
}

// MintGate creates new funds for a token and credits them to the primary
// wallet of the account owning the token.
type MintGate struct {
	mintRepo      *repository.MintRepository
	transferRepo  *repository.TransferRepository
	tokenRepo     *repository.TokenRepository
	walletService *WalletService
	ledger        *ledger.Ledger
	db            *gorm.DB
}

func NewMintGate(
	mintRepo *repository.MintRepository,
	transferRepo *repository.TransferRepository,
	tokenRepo *repository.TokenRepository,
	walletService *WalletService,
	l *ledger.Ledger,
	db *gorm.DB,
) *MintGate {
	return &MintGate{
		mintRepo:      mintRepo,
		transferRepo:  transferRepo,
		tokenRepo:     tokenRepo,
		walletService: walletService,
		ledger:        l,
		db:            db,
	}
}

// Insert records the mint and its transfer as pending, writes the ledger
// entry and then confirms both. A repeated idempotency token returns the
// mint recorded the first time.
func (g *MintGate) Insert(ctx context.Context, req MintRequest) (*models.Mint, *models.Transfer, error) {
	if req.IdempotencyToken == "" {
		return nil, nil, ErrIdempotencyTokenRequired
	}
	if req.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	existing, err := g.mintRepo.FindByIdempotencyToken(req.IdempotencyToken)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return existing, existing.Transfer, nil
	}

	taken, err := g.transferRepo.FindByIdempotencyToken(req.IdempotencyToken)
	if err != nil {
		return nil, nil, err
	}
	if taken != nil {
		return nil, nil, ErrIdempotencyConflict
	}

	token, err := g.tokenRepo.FindByExternalID(req.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if token == nil {
		return nil, nil, ErrTokenNotFound
	}

	wallet, err := g.walletService.GetOrCreatePrimaryForAccount(&token.Account)
	if err != nil {
		return nil, nil, err
	}

	transfer := &models.Transfer{
		IdempotencyToken: req.IdempotencyToken,
		FromAddress:      models.GenesisAddress,
		ToAddress:        wallet.Address,
		TokenID:          token.ID,
		Amount:           req.Amount,
		Metadata:         req.Metadata,
	}
	mint := &models.Mint{
		IdempotencyToken: req.IdempotencyToken,
		TokenID:          token.ID,
		Amount:           req.Amount,
		Description:      req.Description,
	}

	db := g.db.WithContext(ctx)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := g.transferRepo.Create(tx, transfer); err != nil {
			return err
		}
		mint.TransferID = &transfer.ID
		return g.mintRepo.Create(tx, mint)
	})
	if err != nil {
		return nil, nil, err
	}

	entry := &ledger.Entry{
		IdempotencyToken: req.IdempotencyToken,
		ToAddress:        wallet.Address,
		TokenID:          token.ExternalID,
		Amount:           req.Amount,
	}
	if err := g.ledger.Record(entry); err != nil && !errors.Is(err, ledger.ErrDuplicateEntry) {
		transfer.Status = models.TransferFailed
		transfer.ErrorCode = "ledger_error"
		if saveErr := db.Save(transfer).Error; saveErr != nil {
			return nil, nil, saveErr
		}
		return mint, transfer, err
	}

	transfer.Status = models.TransferConfirmed
	mint.Confirmed = true
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(transfer).Error; err != nil {
			return err
		}
		return g.mintRepo.UpdateInTx(tx, mint)
	})
	if err != nil {
		return nil, nil, err
	}

	mint.Token = *token
	mint.Transfer = transfer
	transfer.Token = *token
	return mint, transfer, nil
}
