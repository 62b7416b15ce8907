package models

import "time"

// Exercise is a reusable activity definition in the catalog.
type Exercise struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"not null;index:idx_exercise_name_description" json:"name" example:"Running"`
	Description string    `gorm:"not null;index:idx_exercise_name_description" json:"description" example:"morning"`
}
