package ledger

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrDuplicateEntry    = errors.New("entry already recorded")
)

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Record applies entry to the balances of both addresses and stores it. The
// debit, the credit and the entry row are written in one transaction.
func (l *Ledger) Record(entry *Entry) error {
	if entry.Amount <= 0 {
		return ErrInvalidAmount
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findEntry(tx, entry.IdempotencyToken)
		if err != nil {
			return err
		}
		if existing != nil {
			*entry = *existing
			return ErrDuplicateEntry
		}

		if !entry.IsMint() {
			from, err := lockBalance(tx, entry.FromAddress, entry.TokenID)
			if err != nil {
				return err
			}
			if from.Amount < entry.Amount {
				return ErrInsufficientFunds
			}
			from.Amount -= entry.Amount
			if err := tx.Save(from).Error; err != nil {
				return err
			}
		}

		to, err := lockBalance(tx, entry.ToAddress, entry.TokenID)
		if err != nil {
			return err
		}
		to.Amount += entry.Amount
		if err := tx.Save(to).Error; err != nil {
			return err
		}

		return tx.Create(entry).Error
	})
}

// lockBalance returns the balance row for update, creating an empty one when
// the address has never held the token.
func lockBalance(tx *gorm.DB, address, tokenID string) (*Balance, error) {
	var balance Balance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ? AND token_id = ?", address, tokenID).
		First(&balance).Error
	if err == nil {
		return &balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	balance = Balance{Address: address, TokenID: tokenID}
	if err := tx.Create(&balance).Error; err != nil {
		return nil, err
	}
	return &balance, nil
}

func findEntry(db *gorm.DB, idempotencyToken string) (*Entry, error) {
	var entry Entry
	err := db.Where("idempotency_token = ?", idempotencyToken).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// BalanceOf returns the amount of tokenID held by address, zero if none.
func (l *Ledger) BalanceOf(address, tokenID string) (int64, error) {
	var balance Balance
	err := l.db.Where("address = ? AND token_id = ?", address, tokenID).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return balance.Amount, nil
}

func (l *Ledger) Balances(address string) ([]Balance, error) {
	var balances []Balance
	err := l.db.Where("address = ?", address).
		Order("token_id ASC").
		Find(&balances).Error
	return balances, err
}
