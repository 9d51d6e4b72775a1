package seeder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KeepsDefaultsForMissingSections(t *testing.T) {
	data, err := Parse([]byte(`
admins:
  - email: ops@example.com
    password: supersecret
    metadata:
      team: ops
memberships:
  - email: ops@example.com
    role: viewer
    account: brand2
`))
	require.NoError(t, err)

	require.Len(t, data.Admins, 1)
	assert.Equal(t, "ops@example.com", data.Admins[0].Email)
	assert.Equal(t, "ops", data.Admins[0].Metadata["team"])

	require.Len(t, data.Memberships, 1)
	assert.Equal(t, "viewer", data.Memberships[0].RoleName)
	assert.Equal(t, "brand2", data.Memberships[0].AccountName)

	assert.Equal(t, DefaultData().Roles, data.Roles)
	assert.Equal(t, DefaultData().Accounts, data.Accounts)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("admins: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roles:\n  - name: auditor\n"), 0o600))

	data, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, data.Roles, 1)
	assert.Equal(t, "auditor", data.Roles[0].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
