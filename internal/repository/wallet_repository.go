package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Create(wallet *models.Wallet) error {
	return r.db.Create(wallet).Error
}

func (r *WalletRepository) FindByAddress(address string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Where("address = ?", address).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) FindPrimaryByUserID(userID uint) (*models.Wallet, error) {
	return r.findPrimary("user_id = ?", userID)
}

func (r *WalletRepository) FindPrimaryByAccountID(accountID uint) (*models.Wallet, error) {
	return r.findPrimary("account_id = ?", accountID)
}

func (r *WalletRepository) findPrimary(query string, id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Where(query, id).
		Where("identifier = ?", models.WalletPrimary).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) FindByUserID(userID uint) ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&wallets).Error
	return wallets, err
}
