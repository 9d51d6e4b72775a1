// Package ledger keeps per-address token balances and the entries that moved
// them. It is backed by its own database, separate from the core eWallet one.
package ledger

import "gorm.io/gorm"

// Balance is the amount of one token held by one address.
type Balance struct {
	gorm.Model
	Address string `gorm:"not null;uniqueIndex:idx_ledger_balances_address_token" json:"address"`
	TokenID string `gorm:"not null;uniqueIndex:idx_ledger_balances_address_token" json:"token_id"`
	Amount  int64  `gorm:"not null;default:0" json:"amount"`
}

func (Balance) TableName() string {
	return "ledger_balances"
}

// Entry records one movement of funds. An empty FromAddress is a mint.
type Entry struct {
	gorm.Model
	IdempotencyToken string `gorm:"uniqueIndex;not null" json:"idempotency_token"`
	FromAddress      string `gorm:"index" json:"from"`
	ToAddress        string `gorm:"not null;index" json:"to"`
	TokenID          string `gorm:"not null;index" json:"token_id"`
	Amount           int64  `gorm:"not null" json:"amount"`
}

func (Entry) TableName() string {
	return "ledger_entries"
}

// IsMint reports whether the entry created funds instead of moving them.
func (e *Entry) IsMint() bool {
	return e.FromAddress == ""
}
