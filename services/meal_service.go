package services

import (
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

func (s *MealService) Add(userID uint, date, mealType, foodItem string, calories int) (*models.MealEntry, error) {
	entry := &models.MealEntry{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		FoodItem: foodItem,
		Calories: calories,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MealService) ListByDate(userID uint, date string) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (s *MealService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.MealEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
