package services

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
)

var ErrWalletNotFound = errors.New("wallet not found")

type WalletService struct {
	walletRepo *repository.WalletRepository
	ledger     *ledger.Ledger
}

func NewWalletService(walletRepo *repository.WalletRepository, l *ledger.Ledger) *WalletService {
	return &WalletService{
		walletRepo: walletRepo,
		ledger:     l,
	}
}

func (s *WalletService) GetOrCreatePrimaryForUser(user *models.User) (*models.Wallet, error) {
	wallet, err := s.walletRepo.FindPrimaryByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	if wallet == nil {
		wallet = &models.Wallet{
			Name:       models.WalletPrimary,
			Identifier: models.WalletPrimary,
			UserID:     &user.ID,
		}
		if err := s.walletRepo.Create(wallet); err != nil {
			return nil, err
		}
	}

	return wallet, nil
}

func (s *WalletService) GetOrCreatePrimaryForAccount(account *models.Account) (*models.Wallet, error) {
	wallet, err := s.walletRepo.FindPrimaryByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	if wallet == nil {
		wallet = &models.Wallet{
			Name:       models.WalletPrimary,
			Identifier: models.WalletPrimary,
			AccountID:  &account.ID,
		}
		if err := s.walletRepo.Create(wallet); err != nil {
			return nil, err
		}
	}

	return wallet, nil
}

func (s *WalletService) ListForUser(user *models.User) ([]models.Wallet, error) {
	return s.walletRepo.FindByUserID(user.ID)
}

func (s *WalletService) GetByAddress(address string) (*models.Wallet, error) {
	wallet, err := s.walletRepo.FindByAddress(address)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// GetBalances returns the ledger balances of a known wallet.
func (s *WalletService) GetBalances(address string) ([]ledger.Balance, error) {
	wallet, err := s.walletRepo.FindByAddress(address)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return s.ledger.Balances(address)
}

func (s *WalletService) GetBalance(address, tokenID string) (int64, error) {
	return s.ledger.BalanceOf(address, tokenID)
}
