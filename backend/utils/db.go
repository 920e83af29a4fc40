package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"quicklearn/backend/config"
	"quicklearn/backend/models"
)

// InitDB connects to PostgreSQL and runs migrations.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema. The unique indexes on
// Course.NameKey, Roadmap.NameKey and (user_id, lesson_id) are the real
// correctness guarantee for the uniqueness checks done in the services.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RoadmapCategory{},
		&models.CourseCategory{},
		&models.Roadmap{},
		&models.Course{},
		&models.Lesson{},
		&models.UserLessonProgress{},
	)
}
