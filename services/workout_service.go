package services

import (
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

// Add logs a workout. CaloriesBurned is derived here, once, from the
// duration; it is stored with the row and never recomputed.
func (s *WorkoutService) Add(userID uint, date, exerciseType string, duration int, notes string) (*models.WorkoutEntry, error) {
	entry := &models.WorkoutEntry{
		UserID:         userID,
		Date:           date,
		ExerciseType:   exerciseType,
		Duration:       duration,
		CaloriesBurned: duration * models.CaloriesPerMinute,
		Notes:          notes,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WorkoutService) ListByDate(userID uint, date string) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes a workout owned by userID; someone else's row is not found.
func (s *WorkoutService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.WorkoutEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
