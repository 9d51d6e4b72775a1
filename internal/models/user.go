package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ExternalID     string       `gorm:"uniqueIndex;not null;size:64" json:"id"`
	Username       *string      `gorm:"uniqueIndex" json:"username"`
	Email          *string      `gorm:"uniqueIndex" json:"email"`
	PasswordHash   string       `json:"-"`
	ProviderUserID *string      `gorm:"uniqueIndex" json:"provider_user_id"`
	Metadata       Metadata     `gorm:"type:text" json:"metadata"`
	Memberships    []Membership `gorm:"foreignKey:UserID" json:"-"`
	AuthTokens     []AuthToken  `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ExternalID == "" {
		u.ExternalID = NewExternalID(PrefixUser)
	}
	return nil
}

// DisplayName returns the first identifier set on the user.
func (u *User) DisplayName() string {
	switch {
	case u.Email != nil:
		return *u.Email
	case u.Username != nil:
		return *u.Username
	case u.ProviderUserID != nil:
		return *u.ProviderUserID
	}
	return u.ExternalID
}
