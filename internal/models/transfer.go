package models

import "gorm.io/gorm"

const (
	TransferPending   = "pending"
	TransferConfirmed = "confirmed"
	TransferFailed    = "failed"
)

type Transfer struct {
	gorm.Model
	ExternalID       string   `gorm:"uniqueIndex;not null;size:64" json:"id"`
	IdempotencyToken string   `gorm:"uniqueIndex;not null" json:"idempotency_token"`
	FromAddress      string   `gorm:"not null;index" json:"from"`
	ToAddress        string   `gorm:"not null;index" json:"to"`
	TokenID          uint     `gorm:"not null;index" json:"token_id"`
	Token            Token    `gorm:"foreignKey:TokenID" json:"-"`
	Amount           int64    `gorm:"not null" json:"amount"`
	Status           string   `gorm:"not null;default:pending;index" json:"status"`
	ErrorCode        string   `json:"error_code,omitempty"`
	Metadata         Metadata `gorm:"type:text" json:"metadata"`
}

func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ExternalID == "" {
		t.ExternalID = NewExternalID(PrefixTransfer)
	}
	if t.Status == "" {
		t.Status = TransferPending
	}
	return nil
}

func (t *Transfer) Confirmed() bool {
	return t.Status == TransferConfirmed
}

// Matches reports whether the transfer moves amount of the token with
// externalTokenID between the same two addresses. Token must be loaded.
func (t *Transfer) Matches(from, to, externalTokenID string, amount int64) bool {
	return t.FromAddress == from &&
		t.ToAddress == to &&
		t.Token.ExternalID == externalTokenID &&
		t.Amount == amount
}
