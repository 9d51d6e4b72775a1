package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type KeyRepository struct {
	db *gorm.DB
}

func NewKeyRepository(db *gorm.DB) *KeyRepository {
	return &KeyRepository{db: db}
}

func (r *KeyRepository) Create(key *models.Key) error {
	return r.db.Create(key).Error
}

func (r *KeyRepository) FindByAccessKey(accessKey string) (*models.Key, error) {
	var key models.Key
	err := r.db.Preload("Account").Where("access_key = ?", accessKey).First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

type APIKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

func (r *APIKeyRepository) Create(apiKey *models.APIKey) error {
	return r.db.Create(apiKey).Error
}

func (r *APIKeyRepository) FindByKey(key string) (*models.APIKey, error) {
	var apiKey models.APIKey
	err := r.db.Preload("Account").Where("key = ?", key).First(&apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &apiKey, nil
}
