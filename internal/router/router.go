package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/handlers"
	"github.com/vitalog-dev/vitalog/internal/middleware"
	"github.com/vitalog-dev/vitalog/internal/types"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/account", middleware.AuthMiddleware(), handlers.UpdateAccount)
			auth.DELETE("/account", middleware.AuthMiddleware(), handlers.DeleteAccount)
		}

		tracker := api.Group("", middleware.AuthMiddleware())
		{
			tracker.GET("/profile", h.GetProfile)
			tracker.PUT("/profile", h.SaveProfile)

			tracker.GET("/food", h.ListFoodEntries)
			tracker.POST("/food", h.CreateFoodEntry)
			tracker.DELETE("/food/:id", h.DeleteFoodEntry)

			tracker.GET("/water", h.ListWaterEntries)
			tracker.POST("/water", h.CreateWaterEntry)
			tracker.DELETE("/water/:id", h.DeleteWaterEntry)

			tracker.GET("/workouts", h.ListWorkoutEntries)
			tracker.POST("/workouts", h.CreateWorkoutEntry)
			tracker.DELETE("/workouts/:id", h.DeleteWorkoutEntry)

			tracker.GET("/catalog", h.SearchCatalog)
			tracker.GET("/catalog/:id", h.GetCatalogFood)

			tracker.GET("/dashboard", h.GetDashboard)
			tracker.GET("/history", h.GetHistory)

			tracker.GET("/ws", h.WebSocket)
		}
	}

	return r
}
