package models

import "gorm.io/gorm"

type Account struct {
	gorm.Model
	ExternalID  string   `gorm:"uniqueIndex;not null;size:64" json:"id"`
	Name        string   `gorm:"uniqueIndex;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	ParentID    *uint    `gorm:"index" json:"parent_id"`
	Parent      *Account `gorm:"foreignKey:ParentID" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ExternalID == "" {
		a.ExternalID = NewExternalID(PrefixAccount)
	}
	return nil
}

// IsMaster reports whether the account sits at the top of the hierarchy.
func (a *Account) IsMaster() bool {
	return a.ParentID == nil
}
