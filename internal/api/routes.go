package api

import (
	"net/http"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/logger"
	"alcyxob/fitplan/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Log            *logger.Logger
	JWTSecret      string
	CORSOrigins    []string
	ServiceName    string
	AuthService    service.AuthService
	ProfileService service.ProfileService
	WorkoutService service.WorkoutService
	CatalogService service.CatalogService
	Regenerator    Regenerator
}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(d.ServiceName))
	router.Use(RequestLogger(d.Log))
	router.Use(cors.New(corsConfig(d.CORSOrigins)))

	SetupRoutes(router, d)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", headerRequestID},
		ExposeHeaders: []string{headerRequestID},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func SetupRoutes(router *gin.Engine, d Deps) {
	authHandler := NewAuthHandler(d.AuthService)
	profileHandler := NewProfileHandler(d.ProfileService)
	workoutHandler := NewWorkoutHandler(d.WorkoutService)
	exerciseHandler := NewExerciseHandler(d.CatalogService)
	adminHandler := NewAdminHandler(d.Regenerator)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(d.JWTSecret))
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/me/profile", profileHandler.GetProfile)
		protected.PUT("/me/profile", profileHandler.UpdateProfile)

		// --- Workout Plans ---
		plans := protected.Group("/workout-plans")
		{
			plans.POST("", workoutHandler.GeneratePlan)
			plans.GET("/current", workoutHandler.GetCurrentPlan)
			plans.GET("/:weekOf", workoutHandler.GetPlanByWeek)
			plans.POST("/:weekOf/export", workoutHandler.ExportPlan)
		}

		// --- Exercise Catalog ---
		exercises := protected.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.GET("/:id", exerciseHandler.GetExercise)
		}

		admin := protected.Group("/admin")
		admin.Use(RoleMiddleware(domain.RoleAdmin))
		{
			admin.POST("/workout-plans/regenerate", adminHandler.RegeneratePlans)
		}
	}
}
