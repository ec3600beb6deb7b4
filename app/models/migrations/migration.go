package migrations

import (
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntry{})
}
