package db

import (
	"VidTube.com/pkg/database"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init init DB
func Init() {
	DB = database.GetDB()
}
