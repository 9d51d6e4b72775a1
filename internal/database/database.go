package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch {
	case databaseURL == "" || databaseURL == ":memory:" || databaseURL == "sqlite::memory:":
		db, err = gorm.Open(sqlite.Open(":memory:"), config)
		if err == nil {
			// Every connection to ":memory:" is a separate database.
			err = singleConnection(db)
		}
	case strings.HasPrefix(databaseURL, "sqlite:"):
		dbPath := strings.TrimPrefix(databaseURL, "sqlite:")
		dbPath = dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	default:
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func singleConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

// Migrate creates the core eWallet tables.
func Migrate(db *gorm.DB) error {
	log.Println("[Database] Running core migrations...")

	err := db.AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Role{},
		&models.Membership{},
		&models.Key{},
		&models.APIKey{},
		&models.AuthToken{},
		&models.Wallet{},
		&models.Token{},
		&models.Transfer{},
		&models.Mint{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("[Database] Core migrations completed successfully")
	return nil
}

// MigrateLedger creates the ledger tables. The ledger normally lives in its
// own database.
func MigrateLedger(db *gorm.DB) error {
	log.Println("[Database] Running ledger migrations...")

	if err := db.AutoMigrate(&ledger.Balance{}, &ledger.Entry{}); err != nil {
		return fmt.Errorf("ledger migration failed: %w", err)
	}

	log.Println("[Database] Ledger migrations completed successfully")
	return nil
}
