package repository

import (
	"errors"
	"time"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type AuthTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

func (r *AuthTokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

// FindByToken returns the unexpired token with its user.
func (r *AuthTokenRepository) FindByToken(tokenStr string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("token = ? AND expires_at > ?", tokenStr, time.Now()).
		Preload("User").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *AuthTokenRepository) DeleteByToken(tokenStr string) error {
	return r.db.Where("token = ?", tokenStr).Delete(&models.AuthToken{}).Error
}
