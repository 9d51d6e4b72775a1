// Package seeder provisions the roles, accounts, admin users and memberships
// an eWallet instance needs before anyone can log in to the admin panel.
package seeder

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
	"github.com/h4ks-com/ewallet/internal/services"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrRoleNotFound    = errors.New("role not found")
)

var validate = validator.New()

type Seeder struct {
	users       *services.UserService
	memberships *services.MembershipService
	accountRepo *repository.AccountRepository
	roleRepo    *repository.RoleRepository
	reporter    *Reporter
}

func New(db *gorm.DB, reporter *Reporter) *Seeder {
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)

	return &Seeder{
		users:       services.NewUserService(userRepo, walletRepo, db),
		memberships: services.NewMembershipService(repository.NewMembershipRepository(db)),
		accountRepo: repository.NewAccountRepository(db),
		roleRepo:    repository.NewRoleRepository(db),
		reporter:    reporter,
	}
}

// Run seeds everything in data. It never stops at a failed record.
func (s *Seeder) Run(data *Data) *Summary {
	log.Println("[Seeder] Seeding started")

	summary := &Summary{}
	steps := []struct {
		title string
		run   func() []Result
	}{
		{"Roles", func() []Result { return s.SeedRoles(data.Roles) }},
		{"Accounts", func() []Result { return s.SeedAccounts(data.Accounts) }},
		{"Admin users", func() []Result { return s.SeedAdmins(data.Admins) }},
		{"Memberships", func() []Result { return s.SeedMemberships(data.Memberships) }},
	}

	for _, step := range steps {
		s.reporter.Section(step.title)
		for _, result := range step.run() {
			s.reporter.Report(result)
			summary.add(result)
		}
	}

	s.reporter.Summary(summary)
	log.Printf("[Seeder] Seeding finished: %d success, %d warning, %d error, %d unparseable",
		summary.Success, summary.Warning, summary.Error, summary.Unparseable)
	return summary
}

func (s *Seeder) SeedRoles(seeds []RoleSeed) []Result {
	results := make([]Result, 0, len(seeds))
	for _, seed := range seeds {
		results = append(results, s.seedRole(seed))
	}
	return results
}

func (s *Seeder) seedRole(seed RoleSeed) Result {
	subject := "role " + seed.Name

	if err := validate.Struct(seed); err != nil {
		return failure(subject, err)
	}

	existing, err := s.roleRepo.FindByName(seed.Name)
	if err != nil {
		return Result{Kind: OutcomeUnparseable, Subject: subject, Message: err.Error(), Err: err}
	}
	if existing != nil {
		return Result{Kind: OutcomeWarning, Subject: subject, Message: "already exists"}
	}

	if err := s.roleRepo.Create(&models.Role{Name: seed.Name, Priority: seed.Priority}); err != nil {
		return failure(subject, err)
	}
	return Result{Kind: OutcomeSuccess, Subject: subject, Message: "created"}
}

// SeedAccounts creates accounts in order, so a parent must come before its
// children.
func (s *Seeder) SeedAccounts(seeds []AccountSeed) []Result {
	results := make([]Result, 0, len(seeds))
	for _, seed := range seeds {
		results = append(results, s.seedAccount(seed))
	}
	return results
}

func (s *Seeder) seedAccount(seed AccountSeed) Result {
	subject := "account " + seed.Name

	if err := validate.Struct(seed); err != nil {
		return failure(subject, err)
	}

	existing, err := s.accountRepo.FindByName(seed.Name)
	if err != nil {
		return Result{Kind: OutcomeUnparseable, Subject: subject, Message: err.Error(), Err: err}
	}
	if existing != nil {
		return Result{Kind: OutcomeWarning, Subject: subject, Message: "already exists"}
	}

	account := &models.Account{Name: seed.Name, Description: seed.Description}
	if seed.Parent != "" {
		parent, err := s.accountRepo.FindByName(seed.Parent)
		if err != nil || parent == nil {
			if err == nil {
				err = fmt.Errorf("parent %s: %w", seed.Parent, ErrAccountNotFound)
			}
			return Result{Kind: OutcomeUnparseable, Subject: subject, Message: err.Error(), Err: err}
		}
		account.ParentID = &parent.ID
	}

	if err := s.accountRepo.Create(account); err != nil {
		return failure(subject, err)
	}
	return Result{Kind: OutcomeSuccess, Subject: subject, Message: "created"}
}

func (s *Seeder) SeedAdmins(seeds []AdminSeed) []Result {
	results := make([]Result, 0, len(seeds))
	for _, seed := range seeds {
		results = append(results, s.seedAdmin(seed))
	}
	return results
}

func (s *Seeder) seedAdmin(seed AdminSeed) Result {
	subject := "admin " + seed.Email

	existing, err := s.users.GetByEmail(seed.Email)
	if err != nil {
		return Result{Kind: OutcomeUnparseable, Subject: subject, Message: err.Error(), Err: err}
	}
	if existing != nil {
		return Result{
			Kind:    OutcomeWarning,
			Subject: subject,
			Message: fmt.Sprintf("already exists, login with email %s and password %s", *existing.Email, seed.Password),
		}
	}

	user, err := s.users.InsertAdmin(services.AdminInput{
		Email:    seed.Email,
		Password: seed.Password,
		Metadata: seed.Metadata,
	})
	if err != nil {
		return failure(subject, err)
	}
	return Result{
		Kind:    OutcomeSuccess,
		Subject: subject,
		Message: fmt.Sprintf("created %s, login with email %s and password %s", user.ExternalID, seed.Email, seed.Password),
	}
}

// SeedMemberships assigns roles on every run, even for existing memberships.
func (s *Seeder) SeedMemberships(seeds []MembershipSeed) []Result {
	results := make([]Result, 0, len(seeds))
	for _, seed := range seeds {
		results = append(results, s.seedMembership(seed))
	}
	return results
}

func (s *Seeder) seedMembership(seed MembershipSeed) Result {
	subject := fmt.Sprintf("membership %s/%s/%s", seed.Email, seed.AccountName, seed.RoleName)

	user, account, role, err := s.resolveMembership(seed)
	if err != nil {
		return Result{Kind: OutcomeUnparseable, Subject: subject, Message: err.Error(), Err: err}
	}

	if _, err := s.memberships.AssignRole(user, account, role); err != nil {
		return failure(subject, err)
	}
	return Result{
		Kind:    OutcomeSuccess,
		Subject: subject,
		Message: fmt.Sprintf("%s is %s on %s", seed.Email, role.Name, account.Name),
	}
}

func (s *Seeder) resolveMembership(seed MembershipSeed) (*models.User, *models.Account, *models.Role, error) {
	user, err := s.users.GetByEmail(seed.Email)
	if err != nil {
		return nil, nil, nil, err
	}
	if user == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", seed.Email, ErrUserNotFound)
	}

	account, err := s.accountRepo.FindByName(seed.AccountName)
	if err != nil {
		return nil, nil, nil, err
	}
	if account == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", seed.AccountName, ErrAccountNotFound)
	}

	role, err := s.roleRepo.FindByName(seed.RoleName)
	if err != nil {
		return nil, nil, nil, err
	}
	if role == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", seed.RoleName, ErrRoleNotFound)
	}

	return user, account, role, nil
}

func failure(subject string, err error) Result {
	return Result{
		Kind:    OutcomeError,
		Subject: subject,
		Message: strings.Join(services.FormatValidationErrors(err), "; "),
		Err:     err,
	}
}
