package services

import (
	"github.com/h4ks-com/ewallet/internal/auth"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
)

const keyBytes = 24

type KeyService struct {
	keyRepo    *repository.KeyRepository
	apiKeyRepo *repository.APIKeyRepository
}

func NewKeyService(keyRepo *repository.KeyRepository, apiKeyRepo *repository.APIKeyRepository) *KeyService {
	return &KeyService{
		keyRepo:    keyRepo,
		apiKeyRepo: apiKeyRepo,
	}
}

// CreateKey stores an access/secret key pair for account. Empty values are
// generated. The returned secret is the only copy in clear text.
func (s *KeyService) CreateKey(account *models.Account, accessKey, secretKey string) (*models.Key, string, error) {
	var err error
	if accessKey == "" {
		if accessKey, err = auth.GenerateKey(keyBytes); err != nil {
			return nil, "", err
		}
	}
	if secretKey == "" {
		if secretKey, err = auth.GenerateKey(keyBytes); err != nil {
			return nil, "", err
		}
	}

	hash, err := auth.HashSecret(secretKey)
	if err != nil {
		return nil, "", err
	}

	key := &models.Key{
		AccountID:     account.ID,
		AccessKey:     accessKey,
		SecretKeyHash: hash,
	}
	if err := s.keyRepo.Create(key); err != nil {
		return nil, "", err
	}
	key.Account = *account
	return key, secretKey, nil
}

// CreateAPIKey stores a client API key for account, generating it when key
// is empty.
func (s *KeyService) CreateAPIKey(account *models.Account, key, ownerApp string) (*models.APIKey, error) {
	if key == "" {
		generated, err := auth.GenerateKey(keyBytes)
		if err != nil {
			return nil, err
		}
		key = generated
	}

	apiKey := &models.APIKey{
		AccountID: account.ID,
		Key:       key,
		OwnerApp:  ownerApp,
	}
	if err := s.apiKeyRepo.Create(apiKey); err != nil {
		return nil, err
	}
	apiKey.Account = *account
	return apiKey, nil
}
