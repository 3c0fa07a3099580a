package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jyotsna-57/fitnesstracker/config"
	"github.com/jyotsna-57/fitnesstracker/models"
	"github.com/jyotsna-57/fitnesstracker/routes"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkoutEntry{},
		&models.MealEntry{},
		&models.Goal{},
		&models.Habit{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := config.Config{JWTSecret: "test-secret"}
	return routes.SetupRouter(cfg, zap.NewNop().Sugar(), db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username, "password": "hunter2", "name": "Test User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username, "password": "hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response missing token: %s", w.Body.String())
	}
	return resp.Token
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "alex")

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alex", "password": "other", "name": "Other",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register: want 409, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/dashboard", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("dashboard without token: want 401, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/workouts", "", gin.H{
		"date": "2024-01-07", "exercise_type": "running", "duration": 30,
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("workout without token: want 401, got %d", w.Code)
	}
}

func TestWorkoutRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alex")

	w := doJSON(t, r, http.MethodPost, "/workouts", token, gin.H{
		"date": "2024-01-07", "exercise_type": "running", "duration": 30, "notes": "easy",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add workout: status %d: %s", w.Code, w.Body.String())
	}
	var entry models.WorkoutEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode workout: %v", err)
	}
	if entry.CaloriesBurned != 210 {
		t.Errorf("derived calories: want 210, got %d", entry.CaloriesBurned)
	}

	// malformed duration is rejected before it reaches the aggregation path
	w = doJSON(t, r, http.MethodPost, "/workouts", token, gin.H{
		"date": "2024-01-07", "exercise_type": "running", "duration": "thirty",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric duration: want 400, got %d", w.Code)
	}
}

func TestChartEndpointsReturnEmptyObjectWithoutSession(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/workout-data", "/api/calorie-data"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s without token: want 200, got %d", path, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: not a JSON object: %s", path, w.Body.String())
		}
		if len(body) != 0 {
			t.Errorf("%s without token: want empty object, got %s", path, w.Body.String())
		}
	}
}

func TestCalorieDataReturnsDenseWeek(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alex")

	w := doJSON(t, r, http.MethodGet, "/api/calorie-data", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("calorie data: status %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Dates    []string `json:"dates"`
		Burned   []int    `json:"burned"`
		Consumed []int    `json:"consumed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Dates) != 7 || len(body.Burned) != 7 || len(body.Consumed) != 7 {
		t.Errorf("want 7 entries per series, got %d/%d/%d",
			len(body.Dates), len(body.Burned), len(body.Consumed))
	}
	for i := 1; i < len(body.Dates); i++ {
		if body.Dates[i-1] >= body.Dates[i] {
			t.Errorf("dates not strictly ascending: %v", body.Dates)
			break
		}
	}
}

func TestHabitCompleteEndpointIsIdempotent(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alex")

	w := doJSON(t, r, http.MethodPost, "/habits", token, gin.H{
		"habit_name": "meditate", "frequency": "daily",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add habit: status %d: %s", w.Code, w.Body.String())
	}
	var habit models.Habit
	if err := json.Unmarshal(w.Body.Bytes(), &habit); err != nil {
		t.Fatalf("decode habit: %v", err)
	}

	complete := func() (streak int, completedToday bool) {
		w := doJSON(t, r, http.MethodPost,
			"/habits/"+itoa(habit.ID)+"/complete", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("complete: status %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Streak         int  `json:"streak"`
			CompletedToday bool `json:"completed_today"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode complete: %v", err)
		}
		return resp.Streak, resp.CompletedToday
	}

	if streak, done := complete(); streak != 1 || !done {
		t.Errorf("first complete: streak=%d done=%v", streak, done)
	}
	if streak, done := complete(); streak != 1 || done {
		t.Errorf("second complete same day: streak=%d done=%v", streak, done)
	}
}

func TestDashboardAggregatesToday(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alex")
	today := time.Now().Format("2006-01-02")

	w := doJSON(t, r, http.MethodPost, "/workouts", token, gin.H{
		"date": today, "exercise_type": "running", "duration": 30,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add workout: status %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/meals", token, gin.H{
		"date": today, "meal_type": "Lunch", "food_item": "salad", "calories": 420,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add meal: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: status %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Today                 string `json:"today"`
		TotalCaloriesBurned   int    `json:"total_calories_burned"`
		TotalCaloriesConsumed int    `json:"total_calories_consumed"`
		Workouts              []any  `json:"workouts"`
		Meals                 []any  `json:"meals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if body.Today != today {
		t.Errorf("today: want %s, got %s", today, body.Today)
	}
	if body.TotalCaloriesBurned != 210 || body.TotalCaloriesConsumed != 420 {
		t.Errorf("totals: want 210/420, got %d/%d",
			body.TotalCaloriesBurned, body.TotalCaloriesConsumed)
	}
	if len(body.Workouts) != 1 || len(body.Meals) != 1 {
		t.Errorf("entries: want 1 workout and 1 meal, got %d/%d",
			len(body.Workouts), len(body.Meals))
	}
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
