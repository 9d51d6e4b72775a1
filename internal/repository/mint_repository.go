package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type MintRepository struct {
	db *gorm.DB
}

func NewMintRepository(db *gorm.DB) *MintRepository {
	return &MintRepository{db: db}
}

func (r *MintRepository) Create(tx *gorm.DB, mint *models.Mint) error {
	return tx.Create(mint).Error
}

func (r *MintRepository) UpdateInTx(tx *gorm.DB, mint *models.Mint) error {
	return tx.Save(mint).Error
}

func (r *MintRepository) FindByIdempotencyToken(token string) (*models.Mint, error) {
	var mint models.Mint
	err := r.db.Preload("Token").Preload("Transfer.Token").
		Where("idempotency_token = ?", token).
		First(&mint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mint, nil
}
