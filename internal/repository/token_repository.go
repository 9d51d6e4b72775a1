package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(token *models.Token) error {
	return r.db.Create(token).Error
}

func (r *TokenRepository) FindByExternalID(externalID string) (*models.Token, error) {
	var token models.Token
	err := r.db.Preload("Account").Where("external_id = ?", externalID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) FindAll() ([]models.Token, error) {
	var tokens []models.Token
	err := r.db.Order("created_at ASC").Find(&tokens).Error
	return tokens, err
}
