package db

import (
	"github.com/vitalog-dev/vitalog/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	tables := []interface{}{
		&models.User{},
		&models.Profile{},
		&models.FoodEntry{},
		&models.WaterEntry{},
		&models.WorkoutEntry{},
		&models.DailyHistory{},
		&models.CatalogFood{},
	}

	return DB.AutoMigrate(tables...)
}
