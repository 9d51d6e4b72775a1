package models

import "gorm.io/gorm"

// Membership grants a user one role on one account. A user holds at most one
// membership per account.
type Membership struct {
	gorm.Model
	UserID    uint    `gorm:"not null;uniqueIndex:idx_memberships_user_account" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	AccountID uint    `gorm:"not null;uniqueIndex:idx_memberships_user_account" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`
	RoleID    uint    `gorm:"not null;index" json:"role_id"`
	Role      Role    `gorm:"foreignKey:RoleID" json:"-"`
}
