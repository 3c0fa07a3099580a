package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

// OpenDB connects to Postgres and migrates the schema. The handle is
// returned to the caller and injected into services; there is no package
// global.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkoutEntry{},
		&models.MealEntry{},
		&models.Goal{},
		&models.Habit{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
