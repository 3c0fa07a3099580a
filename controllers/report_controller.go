package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jyotsna-57/fitnesstracker/services"
)

type ReportController struct {
	Reports  *services.ReportService
	Workouts *services.WorkoutService
	Meals    *services.MealService
	Goals    *services.GoalService
	Habits   *services.HabitService
	Users    *services.UserService
}

func NewReportController(
	reports *services.ReportService,
	workouts *services.WorkoutService,
	meals *services.MealService,
	goals *services.GoalService,
	habits *services.HabitService,
	users *services.UserService,
) *ReportController {
	return &ReportController{
		Reports:  reports,
		Workouts: workouts,
		Meals:    meals,
		Goals:    goals,
		Habits:   habits,
		Users:    users,
	}
}

// Dashboard returns everything the landing view needs: today's entries,
// goals, habits, and the day's calorie totals.
func (h *ReportController) Dashboard(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date := today()

	user, err := h.Users.Profile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	workouts, err := h.Workouts.ListByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	meals, err := h.Meals.ListByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	goals, err := h.Goals.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	habits, err := h.Habits.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.Reports.DailySnapshot(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today":                   date,
		"user":                    user,
		"workouts":                workouts,
		"meals":                   meals,
		"goals":                   goals,
		"habits":                  habits,
		"total_calories_burned":   snap.TotalCaloriesBurned,
		"total_calories_consumed": snap.TotalCaloriesConsumed,
	})
}

// Weekly returns the 7-day series plus the weight-goal checkpoints.
func (h *ReportController) Weekly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	series, err := h.Reports.WeeklySeries(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	checkpoints, err := h.Reports.WeightCheckpoints(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"series":       series,
		"weight_goals": checkpoints,
	})
}

// WorkoutData feeds the duration chart. Without a session it answers with an
// empty object, not an error.
func (h *ReportController) WorkoutData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	series, err := h.Reports.WeeklySeries(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dates":     series.Dates,
		"durations": series.Durations,
	})
}

// CalorieData feeds the dual burned/consumed chart; same empty-object rule.
func (h *ReportController) CalorieData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	series, err := h.Reports.WeeklySeries(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dates":    series.Dates,
		"burned":   series.Burned,
		"consumed": series.Consumed,
	})
}
