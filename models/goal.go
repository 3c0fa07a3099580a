package models

import (
	"gorm.io/gorm"
)

// Goal is a dated target, e.g. goal_type "weight" with a target_value in kg.
// Only CurrentValue and Completed change after creation.
type Goal struct {
	gorm.Model
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	GoalType     string  `gorm:"not null" json:"goal_type"`
	TargetValue  float64 `gorm:"not null" json:"target_value"`
	TargetDate   string  `gorm:"size:10;not null" json:"target_date"` // YYYY-MM-DD
	CurrentValue float64 `json:"current_value"`
	Completed    bool    `gorm:"default:false" json:"completed"`
}
