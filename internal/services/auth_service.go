package services

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/auth"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
)

var (
	ErrInvalidAccessKey = errors.New("invalid access key or secret key")
	ErrInvalidAPIKey    = errors.New("invalid api key")
)

// AuthService authenticates the two kinds of API callers: providers with an
// access/secret key pair and clients with an API key and a user auth token.
type AuthService struct {
	keyRepo          *repository.KeyRepository
	apiKeyRepo       *repository.APIKeyRepository
	authTokenService *AuthTokenService
}

func NewAuthService(keyRepo *repository.KeyRepository, apiKeyRepo *repository.APIKeyRepository, authTokenService *AuthTokenService) *AuthService {
	return &AuthService{
		keyRepo:          keyRepo,
		apiKeyRepo:       apiKeyRepo,
		authTokenService: authTokenService,
	}
}

func (s *AuthService) AuthenticateProvider(accessKey, secretKey string) (*models.Account, error) {
	key, err := s.keyRepo.FindByAccessKey(accessKey)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrInvalidAccessKey
	}

	ok, err := auth.VerifySecret(secretKey, key.SecretKeyHash)
	if err != nil || !ok {
		return nil, ErrInvalidAccessKey
	}

	return &key.Account, nil
}

func (s *AuthService) AuthenticateClient(apiKey, authToken string) (*models.User, error) {
	key, err := s.apiKeyRepo.FindByKey(apiKey)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrInvalidAPIKey
	}

	return s.authTokenService.Authenticate(authToken)
}
