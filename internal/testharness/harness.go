// Package testharness sets up isolated API test cases: a sandboxed core and
// ledger database, baseline fixtures and an in-process router with helpers
// to call it as a public, provider or client actor.
package testharness

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/database"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/server"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture credentials inserted in every case.
const (
	AccountName    = "master_account"
	ProviderUserID = "test_provider_user_id"
	Username       = "test_username"
	APIKey         = "test_api_key"
	AuthToken      = "test_auth_token"
	AccessKey      = "test_access_key"
	SecretKey      = "test_secret_key"
	JWTSecret      = "test_jwt_secret"
)

// Case is one isolated test. Everything it writes goes through DB and
// LedgerDB, two transactions rolled back when the test ends.
type Case struct {
	t testing.TB

	DB       *gorm.DB
	LedgerDB *gorm.DB
	Services *server.Services
	Router   *gin.Engine

	Account   *models.Account
	User      *models.User
	APIKey    *models.APIKey
	AuthToken *models.AuthToken
	Key       *models.Key
}

// New starts a case against DATABASE_URL and LEDGER_DATABASE_URL, or two
// in-memory sqlite databases when they are unset.
func New(t testing.TB) *Case {
	return NewWithURLs(t, os.Getenv("DATABASE_URL"), os.Getenv("LEDGER_DATABASE_URL"))
}

func NewWithURLs(t testing.TB, coreURL, ledgerURL string) *Case {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := sandbox(t, open(t, coreURL, database.Migrate))
	ledgerDB := sandbox(t, open(t, ledgerURL, database.MigrateLedger))

	opts := server.Options{JWTSecret: JWTSecret, AuthTokenTTL: time.Hour}
	svc := server.NewServices(db, ledgerDB, opts)

	c := &Case{
		t:        t,
		DB:       db,
		LedgerDB: ledgerDB,
		Services: svc,
		Router:   server.New(svc, opts),
	}
	c.insertFixtures()
	return c
}

var (
	poolsMu sync.Mutex
	pools   = map[string]*gorm.DB{}
)

// open returns a migrated database. In-memory databases are private to the
// case; server databases are opened and migrated once per process.
func open(t testing.TB, url string, migrate func(*gorm.DB) error) *gorm.DB {
	t.Helper()

	if isMemory(url) {
		db, err := database.Connect(url)
		require.NoError(t, err)
		require.NoError(t, migrate(db))
		t.Cleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		})
		return db
	}

	poolsMu.Lock()
	defer poolsMu.Unlock()

	if db, ok := pools[url]; ok {
		return db
	}
	db, err := database.Connect(url)
	require.NoError(t, err)
	require.NoError(t, migrate(db))
	pools[url] = db
	return db
}

func isMemory(url string) bool {
	return url == "" || url == ":memory:" || url == "sqlite::memory:"
}

// sandbox begins a transaction that is rolled back at cleanup.
func sandbox(t testing.TB, db *gorm.DB) *gorm.DB {
	t.Helper()

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

func (c *Case) insertFixtures() {
	t := c.t
	t.Helper()

	c.Account = &models.Account{Name: AccountName, Description: "Master Account"}
	require.NoError(t, c.DB.Create(c.Account).Error)

	username := Username
	providerUserID := ProviderUserID
	c.User = &models.User{
		Username:       &username,
		ProviderUserID: &providerUserID,
		Metadata:       models.Metadata{"first_name": "John", "last_name": "Doe"},
	}
	require.NoError(t, c.DB.Create(c.User).Error)

	_, err := c.Services.Wallets.GetOrCreatePrimaryForUser(c.User)
	require.NoError(t, err)

	c.APIKey, err = c.Services.Keys.CreateAPIKey(c.Account, APIKey, models.OwnerAppEWalletAPI)
	require.NoError(t, err)

	c.AuthToken, err = c.Services.AuthTokens.Register(c.User, AuthToken, models.OwnerAppEWalletAPI)
	require.NoError(t, err)

	c.Key, _, err = c.Services.Keys.CreateKey(c.Account, AccessKey, SecretKey)
	require.NoError(t, err)
}
