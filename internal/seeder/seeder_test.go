package seeder

import (
	"bytes"
	"testing"

	"github.com/h4ks-com/ewallet/internal/database"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSeeder(t *testing.T) (*Seeder, *gorm.DB, *bytes.Buffer) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	out := &bytes.Buffer{}
	return New(db, NewReporter(out)), db, out
}

func TestSeeder_RunTwice(t *testing.T) {
	s, db, out := setupSeeder(t)
	data := DefaultData()

	first := s.Run(data)
	assert.False(t, first.Failed())
	assert.Equal(t, len(data.Roles)+len(data.Accounts)+len(data.Admins)+len(data.Memberships), first.Success)
	assert.Zero(t, first.Warning)

	second := s.Run(data)
	assert.False(t, second.Failed())
	assert.Equal(t, len(data.Roles)+len(data.Accounts)+len(data.Admins), second.Warning)
	assert.Equal(t, len(data.Memberships), second.Success)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "admin_brand1@example.com").Count(&users).Error)
	assert.Equal(t, int64(1), users)

	var memberships []models.Membership
	require.NoError(t, db.Preload("User").Preload("Account").Preload("Role").
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("users.email = ?", "admin_brand1@example.com").
		Find(&memberships).Error)
	require.Len(t, memberships, 1)
	assert.Equal(t, "brand1", memberships[0].Account.Name)
	assert.Equal(t, models.RoleAdmin, memberships[0].Role.Name)

	assert.Contains(t, out.String(), "[SUCCESS] admin admin_brand1@example.com")
	assert.Contains(t, out.String(), "[WARNING] admin admin_brand1@example.com: already exists, login with email admin_brand1@example.com and password password")
}

func TestSeeder_AccountHierarchy(t *testing.T) {
	s, db, _ := setupSeeder(t)
	s.Run(DefaultData())

	var master, brand models.Account
	require.NoError(t, db.Where("name = ?", "master_account").First(&master).Error)
	require.NoError(t, db.Where("name = ?", "brand1").First(&brand).Error)

	assert.True(t, master.IsMaster())
	require.NotNil(t, brand.ParentID)
	assert.Equal(t, master.ID, *brand.ParentID)
}

func TestSeeder_UnparseableMembership(t *testing.T) {
	s, _, out := setupSeeder(t)
	s.Run(&Data{Roles: DefaultData().Roles, Accounts: DefaultData().Accounts})

	tests := []struct {
		name string
		seed MembershipSeed
		err  error
	}{
		{"missing user", MembershipSeed{Email: "ghost@example.com", RoleName: models.RoleAdmin, AccountName: "brand1"}, ErrUserNotFound},
		{"missing account", MembershipSeed{Email: "admin@example.com", RoleName: models.RoleAdmin, AccountName: "brand9"}, ErrAccountNotFound},
		{"missing role", MembershipSeed{Email: "admin@example.com", RoleName: "owner", AccountName: "brand1"}, ErrRoleNotFound},
	}

	results := s.SeedAdmins([]AdminSeed{{Email: "admin@example.com", Password: DefaultPassword}})
	require.Equal(t, OutcomeSuccess, results[0].Kind)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := s.SeedMemberships([]MembershipSeed{tt.seed})
			require.Len(t, results, 1)
			assert.Equal(t, OutcomeUnparseable, results[0].Kind)
			assert.ErrorIs(t, results[0].Err, tt.err)
		})
	}

	summary := s.Run(&Data{Memberships: []MembershipSeed{tests[0].seed}})
	assert.True(t, summary.Failed())
	assert.Equal(t, 1, summary.Unparseable)
	assert.Contains(t, out.String(), "[ERROR] membership ghost@example.com/brand1/admin")
}

func TestSeeder_InvalidAdmin(t *testing.T) {
	s, _, _ := setupSeeder(t)

	results := s.SeedAdmins([]AdminSeed{{Email: "not-an-email", Password: "short"}})
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeError, results[0].Kind)
	assert.Contains(t, results[0].Message, "email: must be a valid email address")
	assert.Contains(t, results[0].Message, "password: must be at least 8 characters")
}

func TestSeeder_ReassignsRole(t *testing.T) {
	s, db, _ := setupSeeder(t)
	s.Run(DefaultData())

	results := s.SeedMemberships([]MembershipSeed{
		{Email: "viewer_brand1@example.com", RoleName: models.RoleAdmin, AccountName: "brand1"},
	})
	require.Equal(t, OutcomeSuccess, results[0].Kind)

	var count int64
	require.NoError(t, db.Model(&models.Membership{}).
		Joins("JOIN users ON users.id = memberships.user_id").
		Joins("JOIN roles ON roles.id = memberships.role_id").
		Where("users.email = ? AND roles.name = ?", "viewer_brand1@example.com", models.RoleAdmin).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
