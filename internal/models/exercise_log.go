package models

import "time"

// ExerciseLog is one performance of an Exercise within a parent log.
type ExerciseLog struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	Duration   string    `gorm:"not null" json:"duration" example:"30"`
	Intensity  string    `gorm:"not null" json:"intensity" example:"Moderate"`
	ExerciseID uint      `gorm:"not null;index" json:"exerciseId" example:"1"`
	LogID      uint      `gorm:"not null;index" json:"logId" example:"7"`
}

// ExerciseLogEntry is an ExerciseLog joined with its Exercise.
type ExerciseLogEntry struct {
	ID          uint   `json:"id" example:"3"`
	Duration    string `json:"duration" example:"30"`
	Intensity   string `json:"intensity" example:"Moderate"`
	ExerciseID  uint   `json:"exerciseId" example:"1"`
	Name        string `json:"name" example:"Running"`
	Description string `json:"description" example:"morning"`
}
