package models

import (
	"strings"

	"gorm.io/gorm"
)

// Token is a currency definition that can be minted and transferred.
type Token struct {
	gorm.Model
	ExternalID    string  `gorm:"uniqueIndex;not null;size:96" json:"id"`
	Symbol        string  `gorm:"not null" json:"symbol"`
	Name          string  `gorm:"not null" json:"name"`
	SubunitToUnit int64   `gorm:"not null" json:"subunit_to_unit"`
	AccountID     uint    `gorm:"not null;index" json:"account_id"`
	Account       Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ExternalID == "" {
		t.ExternalID = NewExternalID(PrefixToken + "_" + strings.ToUpper(t.Symbol))
	}
	return nil
}
