package repository

import (
	"errors"

	"gorm.io/gorm"
)

// FindLatest loads the most recently inserted row of dest's table into dest.
// It returns false when the table is empty.
func FindLatest(db *gorm.DB, dest any) (bool, error) {
	err := db.Order("created_at DESC").Order("id DESC").First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
