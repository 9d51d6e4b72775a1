package models

import "gorm.io/gorm"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type Role struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name" validate:"required,alphanum"`
	Priority int    `gorm:"not null;default:0" json:"priority"`
}
