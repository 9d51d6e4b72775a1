package seeder

import (
	"fmt"
	"os"

	"github.com/h4ks-com/ewallet/internal/models"
	"gopkg.in/yaml.v3"
)

const DefaultPassword = "password"

type RoleSeed struct {
	Name     string `yaml:"name" validate:"required,alphanum"`
	Priority int    `yaml:"priority"`
}

// AccountSeed describes an account. An empty Parent makes it a master account.
type AccountSeed struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Parent      string `yaml:"parent"`
}

type AdminSeed struct {
	Email    string          `yaml:"email"`
	Password string          `yaml:"password"`
	Metadata models.Metadata `yaml:"metadata"`
}

type MembershipSeed struct {
	Email       string `yaml:"email"`
	RoleName    string `yaml:"role"`
	AccountName string `yaml:"account"`
}

// Data is everything the seeder provisions. It is also the shape of a seed
// file.
type Data struct {
	Roles       []RoleSeed       `yaml:"roles"`
	Accounts    []AccountSeed    `yaml:"accounts"`
	Admins      []AdminSeed      `yaml:"admins"`
	Memberships []MembershipSeed `yaml:"memberships"`
}

func DefaultData() *Data {
	return &Data{
		Roles: []RoleSeed{
			{Name: models.RoleAdmin, Priority: 0},
			{Name: models.RoleViewer, Priority: 1},
		},
		Accounts: []AccountSeed{
			{Name: "master_account", Description: "Master Account"},
			{Name: "brand1", Description: "Brand 1", Parent: "master_account"},
			{Name: "brand2", Description: "Brand 2", Parent: "master_account"},
		},
		Admins: []AdminSeed{
			{Email: "admin_master@example.com", Password: DefaultPassword},
			{Email: "admin_brand1@example.com", Password: DefaultPassword},
			{Email: "admin_brand2@example.com", Password: DefaultPassword},
			{Email: "viewer_master@example.com", Password: DefaultPassword},
			{Email: "viewer_brand1@example.com", Password: DefaultPassword},
			{Email: "viewer_brand2@example.com", Password: DefaultPassword},
		},
		Memberships: []MembershipSeed{
			{Email: "admin_master@example.com", RoleName: models.RoleAdmin, AccountName: "master_account"},
			{Email: "admin_brand1@example.com", RoleName: models.RoleAdmin, AccountName: "brand1"},
			{Email: "admin_brand2@example.com", RoleName: models.RoleAdmin, AccountName: "brand2"},
			{Email: "viewer_master@example.com", RoleName: models.RoleViewer, AccountName: "master_account"},
			{Email: "viewer_brand1@example.com", RoleName: models.RoleViewer, AccountName: "brand1"},
			{Email: "viewer_brand2@example.com", RoleName: models.RoleViewer, AccountName: "brand2"},
		},
	}
}

// LoadFile reads a YAML seed file. Sections the file leaves out keep their
// defaults.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var fromFile Data
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	data := DefaultData()
	if fromFile.Roles != nil {
		data.Roles = fromFile.Roles
	}
	if fromFile.Accounts != nil {
		data.Accounts = fromFile.Accounts
	}
	if fromFile.Admins != nil {
		data.Admins = fromFile.Admins
	}
	if fromFile.Memberships != nil {
		data.Memberships = fromFile.Memberships
	}
	return data, nil
}
