package services_test

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/services"
)

func TestWorkoutAddDerivesCalories(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewWorkoutService(db)

	entry, err := svc.Add(1, "2024-01-07", "running", 30, "easy pace")
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}
	if entry.CaloriesBurned != 210 {
		t.Errorf("calories for 30 minutes: want 210, got %d", entry.CaloriesBurned)
	}

	// zero-minute entry is allowed and burns nothing
	entry, err = svc.Add(1, "2024-01-07", "walking", 0, "")
	if err != nil {
		t.Fatalf("add zero-duration workout: %v", err)
	}
	if entry.CaloriesBurned != 0 {
		t.Errorf("calories for 0 minutes: want 0, got %d", entry.CaloriesBurned)
	}
}

func TestWorkoutListByDate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewWorkoutService(db)

	if _, err := svc.Add(1, "2024-01-07", "running", 30, ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(1, "2024-01-06", "cycling", 45, ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(2, "2024-01-07", "yoga", 20, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	entries, err := svc.ListByDate(1, "2024-01-07")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].ExerciseType != "running" {
		t.Errorf("want only user 1's workout on 2024-01-07, got %+v", entries)
	}
}

func TestWorkoutDeleteScopedToOwner(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewWorkoutService(db)

	entry, err := svc.Add(1, "2024-01-07", "running", 30, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Delete(2, entry.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleting another user's workout: want ErrRecordNotFound, got %v", err)
	}
	if err := svc.Delete(1, entry.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	entries, err := svc.ListByDate(1, "2024-01-07")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("want 0 workouts after delete, got %d", len(entries))
	}
}
