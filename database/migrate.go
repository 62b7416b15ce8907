package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"exerciselog/internal/models"
)

func MigrateDatabase(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		&models.Exercise{},
		&models.ExerciseLog{},
	)
	if err != nil {
		log.Error().Err(err).Msg("database migration failed")
		return err
	}

	log.Info().Msg("database migrations completed")
	return nil
}
