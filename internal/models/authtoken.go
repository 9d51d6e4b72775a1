package models

import (
	"time"

	"gorm.io/gorm"
)

type AuthToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	OwnerApp  string    `gorm:"not null" json:"owner_app"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}
