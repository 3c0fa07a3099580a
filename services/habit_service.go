package services

import (
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

type HabitService struct{ db *gorm.DB }

func NewHabitService(db *gorm.DB) *HabitService { return &HabitService{db: db} }

func (s *HabitService) Add(userID uint, name, frequency, goalDescription string) (*models.Habit, error) {
	habit := &models.Habit{
		UserID:          userID,
		HabitName:       name,
		Frequency:       frequency,
		GoalDescription: goalDescription,
	}
	if err := s.db.Create(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) List(userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	err := s.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&habits).Error
	return habits, err
}

// Complete marks the habit done for today. The guard and the increment are a
// single conditional UPDATE, so two concurrent completions on the same day
// cannot both bump the streak. Returns the habit after the attempt and
// whether this call did the increment; a repeat on the same day is a no-op.
func (s *HabitService) Complete(userID, id uint, today string) (*models.Habit, bool, error) {
	res := s.db.Model(&models.Habit{}).
		Where("id = ? AND user_id = ? AND (last_completed IS NULL OR last_completed <> ?)", id, userID, today).
		Updates(map[string]interface{}{
			"streak":         gorm.Expr("streak + 1"),
			"last_completed": today,
		})
	if res.Error != nil {
		return nil, false, res.Error
	}

	var habit models.Habit
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&habit).Error; err != nil {
		return nil, false, err
	}
	return &habit, res.RowsAffected > 0, nil
}

// Delete removes the habit outright, whatever its streak.
func (s *HabitService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Habit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
