package models

import "gorm.io/gorm"

const OwnerAppEWalletAPI = "ewallet_api"

// Key is an access/secret key pair used by server-side providers.
type Key struct {
	gorm.Model
	ExternalID    string  `gorm:"uniqueIndex;not null;size:64" json:"id"`
	AccountID     uint    `gorm:"not null;index" json:"account_id"`
	Account       Account `gorm:"foreignKey:AccountID" json:"-"`
	AccessKey     string  `gorm:"uniqueIndex;not null" json:"access_key"`
	SecretKeyHash string  `gorm:"not null" json:"-"`
}

func (k *Key) BeforeCreate(tx *gorm.DB) error {
	if k.ExternalID == "" {
		k.ExternalID = NewExternalID(PrefixKey)
	}
	return nil
}

// APIKey identifies a client application.
type APIKey struct {
	gorm.Model
	ExternalID string  `gorm:"uniqueIndex;not null;size:64" json:"id"`
	AccountID  uint    `gorm:"not null;index" json:"account_id"`
	Account    Account `gorm:"foreignKey:AccountID" json:"-"`
	Key        string  `gorm:"uniqueIndex;not null" json:"-"`
	OwnerApp   string  `gorm:"not null" json:"owner_app"`
}

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ExternalID == "" {
		k.ExternalID = NewExternalID(PrefixAPIKey)
	}
	return nil
}
