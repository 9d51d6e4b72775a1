package services

import (
	"errors"
	"strings"

	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
)

var ErrTokenNotFound = errors.New("token not found")

type TokenInput struct {
	Symbol        string `json:"symbol" validate:"required,alphanum,max=10"`
	Name          string `json:"name" validate:"required,max=100"`
	SubunitToUnit int64  `json:"subunit_to_unit" validate:"gt=0"`
}

type TokenService struct {
	tokenRepo     *repository.TokenRepository
	walletService *WalletService
}

func NewTokenService(tokenRepo *repository.TokenRepository, walletService *WalletService) *TokenService {
	return &TokenService{
		tokenRepo:     tokenRepo,
		walletService: walletService,
	}
}

// Create defines a token owned by account and makes sure the account has a
// primary wallet to receive mints.
func (s *TokenService) Create(account *models.Account, input TokenInput) (*models.Token, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	if _, err := s.walletService.GetOrCreatePrimaryForAccount(account); err != nil {
		return nil, err
	}

	token := &models.Token{
		Symbol:        strings.ToUpper(input.Symbol),
		Name:          input.Name,
		SubunitToUnit: input.SubunitToUnit,
		AccountID:     account.ID,
		Account:       *account,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *TokenService) Get(externalID string) (*models.Token, error) {
	token, err := s.tokenRepo.FindByExternalID(externalID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}
	return token, nil
}

func (s *TokenService) List() ([]models.Token, error) {
	return s.tokenRepo.FindAll()
}
