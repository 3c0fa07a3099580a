package services

import (
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type ProfileInput struct {
	Name               string  `json:"name"`
	Age                int     `json:"age" binding:"min=0"`
	Gender             string  `json:"gender"`
	Height             float64 `json:"height" binding:"min=0"`
	Weight             float64 `json:"weight" binding:"min=0"`
	GoalWeight         float64 `json:"goal_weight" binding:"min=0"`
	DailyCalorieTarget int     `json:"daily_calorie_target" binding:"min=0"`
}

func (s *UserService) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	user.Name = input.Name
	user.Age = input.Age
	user.Gender = input.Gender
	user.Height = input.Height
	user.Weight = input.Weight
	user.GoalWeight = input.GoalWeight
	user.DailyCalorieTarget = input.DailyCalorieTarget

	return s.db.Save(&user).Error
}
