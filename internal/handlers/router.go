package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/services"
	"gorm.io/gorm"
)

// RouterConfig holds the dependencies of the HTTP surface
type RouterConfig struct {
	DB            *gorm.DB
	Clock         services.Clock
	Logger        *slog.Logger
	ClientOrigins []string
}

// NewRouter wires the store, services and handlers into a gin engine
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := repository.NewStore(cfg.DB)
	taskHandler := NewTaskHandler(services.NewTaskService(store, cfg.Clock))
	userHandler := NewUserHandler(services.NewUserService(store, cfg.Clock))
	analyticsHandler := NewAnalyticsHandler(services.NewAnalyticsService(store, cfg.Clock))
	healthHandler := NewHealthHandler(cfg.DB)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.CORS(cfg.ClientOrigins),
	)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", middleware.RequireTaskID(), taskHandler.GetTask)
			tasks.PUT("/:id", middleware.RequireTaskID(), taskHandler.UpdateTask)
			tasks.PATCH("/:id", middleware.RequireTaskID(), taskHandler.UpdateTask)
			tasks.PATCH("/:id/assign", middleware.RequireTaskID(), taskHandler.AssignTask)
			tasks.DELETE("/:id", middleware.RequireTaskID(), taskHandler.DeleteTask)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/summary", analyticsHandler.Summary)
			analytics.GET("/user/:id", analyticsHandler.UserStats)
		}
	}

	return r
}
