package models

import "gorm.io/gorm"

const (
	WalletPrimary = "primary"

	// GenesisAddress is the source address of every mint.
	GenesisAddress = "gnis000000000000"
)

type Wallet struct {
	gorm.Model
	Address    string   `gorm:"uniqueIndex;not null;size:64" json:"address"`
	Name       string   `gorm:"not null" json:"name"`
	Identifier string   `gorm:"not null;index" json:"identifier"`
	UserID     *uint    `gorm:"index" json:"user_id,omitempty"`
	User       *User    `gorm:"foreignKey:UserID" json:"-"`
	AccountID  *uint    `gorm:"index" json:"account_id,omitempty"`
	Account    *Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.Address == "" {
		w.Address = NewAddress()
	}
	return nil
}
