package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/models"
)

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// ---------- Daily snapshot ----------

type DailySnapshot struct {
	TotalCaloriesBurned   int `json:"total_calories_burned"`
	TotalCaloriesConsumed int `json:"total_calories_consumed"`
}

// DailySnapshot totals one user's calories for a single date. Days with no
// rows sum to zero; that is not an error.
func (s *ReportService) DailySnapshot(ctx context.Context, userID uint, date string) (DailySnapshot, error) {
	var snap DailySnapshot

	if err := s.db.WithContext(ctx).
		Model(&models.WorkoutEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(calories_burned), 0)").
		Scan(&snap.TotalCaloriesBurned).Error; err != nil {
		return DailySnapshot{}, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&snap.TotalCaloriesConsumed).Error; err != nil {
		return DailySnapshot{}, err
	}

	return snap, nil
}

// ---------- Seven-day series ----------

type WeeklySeries struct {
	Dates     []string `json:"dates"`
	Durations []int    `json:"durations"`
	Burned    []int    `json:"burned"`
	Consumed  []int    `json:"consumed"`
}

type GoalCheckpoint struct {
	TargetDate   string  `json:"target_date"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
}

type workoutDaySum struct {
	Date     string
	Duration int
	Calories int
}

type mealDaySum struct {
	Date     string
	Calories int
}

// WeeklySeries builds the dense 7-day window ending at and including today.
// Grouped queries only return rows for days with activity, so the results
// are re-indexed by date and every missing day is filled with an explicit
// zero; a chart consumer always sees exactly 7 aligned points per series.
func (s *ReportService) WeeklySeries(ctx context.Context, userID uint, today time.Time) (*WeeklySeries, error) {
	cutoff := today.AddDate(0, 0, -6).Format("2006-01-02")

	var workouts []workoutDaySum
	if err := s.db.WithContext(ctx).
		Model(&models.WorkoutEntry{}).
		Where("user_id = ? AND date >= ?", userID, cutoff).
		Select("date, SUM(duration) AS duration, SUM(calories_burned) AS calories").
		Group("date").
		Scan(&workouts).Error; err != nil {
		return nil, err
	}

	var meals []mealDaySum
	if err := s.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Where("user_id = ? AND date >= ?", userID, cutoff).
		Select("date, SUM(calories) AS calories").
		Group("date").
		Scan(&meals).Error; err != nil {
		return nil, err
	}

	durationByDate := map[string]int{}
	burnedByDate := map[string]int{}
	for _, w := range workouts {
		durationByDate[w.Date] = w.Duration
		burnedByDate[w.Date] = w.Calories
	}
	consumedByDate := map[string]int{}
	for _, m := range meals {
		consumedByDate[m.Date] = m.Calories
	}

	out := &WeeklySeries{
		Dates:     make([]string, 0, 7),
		Durations: make([]int, 0, 7),
		Burned:    make([]int, 0, 7),
		Consumed:  make([]int, 0, 7),
	}
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		out.Dates = append(out.Dates, date)
		out.Durations = append(out.Durations, durationByDate[date])
		out.Burned = append(out.Burned, burnedByDate[date])
		out.Consumed = append(out.Consumed, consumedByDate[date])
	}
	return out, nil
}

// WeightCheckpoints lists the user's weight goals in chronological order.
// Goals are sparse by nature, so no gap filling here.
func (s *ReportService) WeightCheckpoints(ctx context.Context, userID uint) ([]GoalCheckpoint, error) {
	var checkpoints []GoalCheckpoint
	err := s.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("user_id = ? AND goal_type = ?", userID, "weight").
		Order("target_date ASC").
		Select("target_date, target_value, current_value").
		Scan(&checkpoints).Error
	return checkpoints, err
}
