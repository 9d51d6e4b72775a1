package repository

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Upsert creates the membership or, when the user already belongs to the
// account, replaces its role.
func (r *MembershipRepository) Upsert(membership *models.Membership) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role_id", "updated_at"}),
	}).Create(membership).Error
}

func (r *MembershipRepository) Find(userID, accountID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("Role").Preload("Account").
		Where("user_id = ? AND account_id = ?", userID, accountID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepository) FindByUserID(userID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("Role").Preload("Account").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error
	return memberships, err
}

// HasRole reports whether the user holds roleName on any account.
func (r *MembershipRepository) HasRole(userID uint, roleName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Joins("JOIN roles ON roles.id = memberships.role_id").
		Where("memberships.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count).Error
	return count > 0, err
}
