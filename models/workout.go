package models

import (
	"gorm.io/gorm"
)

// CaloriesPerMinute is the flat burn rate applied once when a workout is
// logged. Kept deliberately simple; entries are never recomputed.
const CaloriesPerMinute = 7

type WorkoutEntry struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null" json:"user_id"`
	Date           string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	ExerciseType   string `gorm:"not null" json:"exercise_type"`
	Duration       int    `gorm:"not null" json:"duration"` // minutes
	CaloriesBurned int    `json:"calories_burned"`
	Notes          string `gorm:"type:text" json:"notes"`
}
