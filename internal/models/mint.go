package models

import "gorm.io/gorm"

type Mint struct {
	gorm.Model
	ExternalID       string    `gorm:"uniqueIndex;not null;size:64" json:"id"`
	IdempotencyToken string    `gorm:"uniqueIndex;not null" json:"idempotency_token"`
	TokenID          uint      `gorm:"not null;index" json:"token_id"`
	Token            Token     `gorm:"foreignKey:TokenID" json:"-"`
	Amount           int64     `gorm:"not null" json:"amount"`
	Description      string    `gorm:"type:text" json:"description"`
	Confirmed        bool      `gorm:"not null;default:false" json:"confirmed"`
	TransferID       *uint     `gorm:"index" json:"transfer_id"`
	Transfer         *Transfer `gorm:"foreignKey:TransferID" json:"-"`
}

func (m *Mint) BeforeCreate(tx *gorm.DB) error {
	if m.ExternalID == "" {
		m.ExternalID = NewExternalID(PrefixMint)
	}
	return nil
}
