package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`

	// profile
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	GoalWeight         float64 `json:"goal_weight"`
	DailyCalorieTarget int     `json:"daily_calorie_target"`
}
