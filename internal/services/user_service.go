package services

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/auth"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email has already been taken")
	ErrProviderUserIDTaken = errors.New("provider user id has already been taken")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// AdminInput describes an admin panel user.
type AdminInput struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Metadata models.Metadata `json:"metadata"`
}

// ProviderUserInput describes a user managed by a provider through the API.
type ProviderUserInput struct {
	ProviderUserID string          `json:"provider_user_id" validate:"required,max=255"`
	Username       string          `json:"username" validate:"omitempty,max=100"`
	Metadata       models.Metadata `json:"metadata"`
}

type UserService struct {
	userRepo   *repository.UserRepository
	walletRepo *repository.WalletRepository
	db         *gorm.DB
}

func NewUserService(userRepo *repository.UserRepository, walletRepo *repository.WalletRepository, db *gorm.DB) *UserService {
	return &UserService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		db:         db,
	}
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

func (s *UserService) GetByExternalID(externalID string) (*models.User, error) {
	return s.userRepo.FindByExternalID(externalID)
}

func (s *UserService) GetByProviderUserID(providerUserID string) (*models.User, error) {
	return s.userRepo.FindByProviderUserID(providerUserID)
}

// Authenticate returns the admin user matching email and password.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	ok, err := auth.VerifySecret(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// InsertAdmin validates input and stores a new admin user with a hashed
// password.
func (s *UserService) InsertAdmin(input AdminInput) (*models.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashSecret(input.Password)
	if err != nil {
		return nil, err
	}

	email := input.Email
	user := &models.User{
		Email:        &email,
		PasswordHash: hash,
		Metadata:     input.Metadata,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// InsertProviderUser stores a provider user together with its primary wallet.
func (s *UserService) InsertProviderUser(input ProviderUserInput) (*models.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByProviderUserID(input.ProviderUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProviderUserIDTaken
	}

	providerUserID := input.ProviderUserID
	user := &models.User{
		ProviderUserID: &providerUserID,
		Metadata:       input.Metadata,
	}
	if input.Username != "" {
		username := input.Username
		user.Username = &username
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Wallet{
			Name:       models.WalletPrimary,
			Identifier: models.WalletPrimary,
			UserID:     &user.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
