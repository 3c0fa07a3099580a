package models

import (
	"gorm.io/gorm"
)

// Habit tracks a recurring behavior. Streak counts distinct days on which
// the habit was completed; it is incremented at most once per calendar day
// and never reset on a miss.
type Habit struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null" json:"user_id"`
	HabitName       string `gorm:"not null" json:"habit_name"`
	Frequency       string `gorm:"not null" json:"frequency"`
	GoalDescription string `gorm:"type:text" json:"goal_description"`
	Streak          int    `gorm:"default:0" json:"streak"`
	LastCompleted   string `gorm:"size:10" json:"last_completed"` // YYYY-MM-DD, empty if never
}
