package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jyotsna-57/fitnesstracker/config"
	"github.com/jyotsna-57/fitnesstracker/controllers"
	"github.com/jyotsna-57/fitnesstracker/middlewares"
	"github.com/jyotsna-57/fitnesstracker/services"
)

func SetupRouter(cfg config.Config, log *zap.SugaredLogger, db *gorm.DB) *gin.Engine {
	workoutSvc := services.NewWorkoutService(db)
	mealSvc := services.NewMealService(db)
	goalSvc := services.NewGoalService(db)
	habitSvc := services.NewHabitService(db)
	reportSvc := services.NewReportService(db)
	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db, cfg.JWTSecret)

	authCtl := controllers.NewAuthController(authSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	habitCtl := controllers.NewHabitController(habitSvc)
	userCtl := controllers.NewUserController(userSvc)
	reportCtl := controllers.NewReportController(reportSvc, workoutSvc, mealSvc, goalSvc, habitSvc, userSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.Default())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected routes
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/dashboard", reportCtl.Dashboard)
		protected.GET("/reports", reportCtl.Weekly)

		protected.POST("/workouts", workoutCtl.Add)
		protected.DELETE("/workouts/:id", workoutCtl.Delete)

		protected.POST("/meals", mealCtl.Add)
		protected.DELETE("/meals/:id", mealCtl.Delete)

		protected.POST("/goals", goalCtl.Add)
		protected.PUT("/goals/:id", goalCtl.Update)
		protected.DELETE("/goals/:id", goalCtl.Delete)

		protected.POST("/habits", habitCtl.Add)
		protected.POST("/habits/:id/complete", habitCtl.Complete)
		protected.DELETE("/habits/:id", habitCtl.Delete)

		protected.GET("/user/profile", userCtl.GetProfile)
		protected.PUT("/user/profile", userCtl.UpdateProfile)
	}

	// Chart data for the presentation layer; no session means an empty
	// object, never a 401.
	charts := r.Group("/api")
	charts.Use(middlewares.OptionalAuth(cfg.JWTSecret))
	{
		charts.GET("/workout-data", reportCtl.WorkoutData)
		charts.GET("/calorie-data", reportCtl.CalorieData)
	}

	return r
}
