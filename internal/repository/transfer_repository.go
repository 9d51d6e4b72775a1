package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(tx *gorm.DB, transfer *models.Transfer) error {
	return tx.Create(transfer).Error
}

func (r *TransferRepository) FindByIdempotencyToken(token string) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.db.Preload("Token").
		Where("idempotency_token = ?", token).
		First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *TransferRepository) FindByAddress(address string) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.Preload("Token").
		Where("from_address = ? OR to_address = ?", address, address).
		Order("created_at DESC").
		Find(&transfers).Error
	return transfers, err
}
