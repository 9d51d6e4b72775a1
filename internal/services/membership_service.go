package services

import (
	"errors"

	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
)

var ErrInvalidMembership = errors.New("membership requires a persisted user, account and role")

type MembershipService struct {
	membershipRepo *repository.MembershipRepository
}

func NewMembershipService(membershipRepo *repository.MembershipRepository) *MembershipService {
	return &MembershipService{membershipRepo: membershipRepo}
}

// AssignRole gives user the role on account, replacing any role the user
// already had there.
func (s *MembershipService) AssignRole(user *models.User, account *models.Account, role *models.Role) (*models.Membership, error) {
	if user == nil || account == nil || role == nil || user.ID == 0 || account.ID == 0 || role.ID == 0 {
		return nil, ErrInvalidMembership
	}

	membership := &models.Membership{
		UserID:    user.ID,
		AccountID: account.ID,
		RoleID:    role.ID,
	}
	if err := s.membershipRepo.Upsert(membership); err != nil {
		return nil, err
	}

	return s.membershipRepo.Find(user.ID, account.ID)
}

func (s *MembershipService) ListForUser(user *models.User) ([]models.Membership, error) {
	return s.membershipRepo.FindByUserID(user.ID)
}

func (s *MembershipService) IsAdmin(user *models.User) (bool, error) {
	return s.membershipRepo.HasRole(user.ID, models.RoleAdmin)
}
