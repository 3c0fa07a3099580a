package services

import (
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

func (s *GoalService) Add(userID uint, goalType string, targetValue float64, targetDate string, currentValue float64) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:       userID,
		GoalType:     goalType,
		TargetValue:  targetValue,
		TargetDate:   targetDate,
		CurrentValue: currentValue,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&goals).Error
	return goals, err
}

// UpdateProgress touches the only mutable fields, current_value and
// completed. Everything else is fixed at creation.
func (s *GoalService) UpdateProgress(userID, id uint, currentValue float64, completed bool) error {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		return err
	}
	goal.CurrentValue = currentValue
	goal.Completed = completed
	return s.db.Save(&goal).Error
}

func (s *GoalService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
