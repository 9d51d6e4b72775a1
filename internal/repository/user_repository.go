package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findOne("email = ?", email)
}

func (r *UserRepository) FindByProviderUserID(providerUserID string) (*models.User, error) {
	return r.findOne("provider_user_id = ?", providerUserID)
}

func (r *UserRepository) FindByExternalID(externalID string) (*models.User, error) {
	return r.findOne("external_id = ?", externalID)
}

func (r *UserRepository) findOne(query string, args ...any) (*models.User, error) {
	var user models.User
	err := r.db.Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
