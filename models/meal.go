package models

import (
	"gorm.io/gorm"
)

type MealEntry struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Date     string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	MealType string `gorm:"not null" json:"meal_type"`          // "Breakfast"|"Lunch"|…
	FoodItem string `gorm:"not null" json:"food_item"`
	Calories int    `gorm:"not null" json:"calories"`
}
