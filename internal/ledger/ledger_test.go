package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLedger(t *testing.T) *Ledger {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Balance{}, &Entry{}))
	return New(db)
}

func TestLedger_RecordMint(t *testing.T) {
	l := setupLedger(t)

	err := l.Record(&Entry{IdempotencyToken: "mint-1", ToAddress: "alice", TokenID: "tok_OMG", Amount: 100})
	require.NoError(t, err)

	amount, err := l.BalanceOf("alice", "tok_OMG")
	require.NoError(t, err)
	assert.Equal(t, int64(100), amount)
}

func TestLedger_RecordTransfer(t *testing.T) {
	l := setupLedger(t)
	require.NoError(t, l.Record(&Entry{IdempotencyToken: "mint-1", ToAddress: "alice", TokenID: "tok_OMG", Amount: 100}))

	err := l.Record(&Entry{IdempotencyToken: "tx-1", FromAddress: "alice", ToAddress: "bob", TokenID: "tok_OMG", Amount: 30})
	require.NoError(t, err)

	alice, _ := l.BalanceOf("alice", "tok_OMG")
	bob, _ := l.BalanceOf("bob", "tok_OMG")
	assert.Equal(t, int64(70), alice)
	assert.Equal(t, int64(30), bob)
}

func TestLedger_InsufficientFunds(t *testing.T) {
	l := setupLedger(t)
	require.NoError(t, l.Record(&Entry{IdempotencyToken: "mint-1", ToAddress: "alice", TokenID: "tok_OMG", Amount: 10}))

	err := l.Record(&Entry{IdempotencyToken: "tx-1", FromAddress: "alice", ToAddress: "bob", TokenID: "tok_OMG", Amount: 20})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	alice, _ := l.BalanceOf("alice", "tok_OMG")
	bob, _ := l.BalanceOf("bob", "tok_OMG")
	assert.Equal(t, int64(10), alice)
	assert.Equal(t, int64(0), bob)

	entry, err := findEntry(l.db, "tx-1")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestLedger_DuplicateEntry(t *testing.T) {
	l := setupLedger(t)
	require.NoError(t, l.Record(&Entry{IdempotencyToken: "mint-1", ToAddress: "alice", TokenID: "tok_OMG", Amount: 10}))

	again := &Entry{IdempotencyToken: "mint-1", ToAddress: "alice", TokenID: "tok_OMG", Amount: 10}
	err := l.Record(again)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.NotZero(t, again.ID)

	amount, _ := l.BalanceOf("alice", "tok_OMG")
	assert.Equal(t, int64(10), amount)
}

func TestLedger_InvalidAmount(t *testing.T) {
	l := setupLedger(t)

	err := l.Record(&Entry{IdempotencyToken: "mint-1", ToAddress: "alice", TokenID: "tok_OMG", Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedger_Balances(t *testing.T) {
	l := setupLedger(t)
	require.NoError(t, l.Record(&Entry{IdempotencyToken: "m1", ToAddress: "alice", TokenID: "tok_BTC", Amount: 5}))
	require.NoError(t, l.Record(&Entry{IdempotencyToken: "m2", ToAddress: "alice", TokenID: "tok_ABC", Amount: 7}))

	balances, err := l.Balances("alice")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "tok_ABC", balances[0].TokenID)
	assert.Equal(t, "tok_BTC", balances[1].TokenID)
}
