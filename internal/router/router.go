package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/auth"
	"taskflow-api/internal/database"
	"taskflow-api/internal/handler"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/middleware"
	"taskflow-api/internal/repository"
	"taskflow-api/internal/service"
)

const serviceName = "taskflow-api"

// Config holds router configuration
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	Tokens   *auth.TokenManager
	BasePath string
	Metrics  *metrics.Metrics
	// Gatherer backs /metrics; the default registry is used when nil
	Gatherer     prometheus.Gatherer
	Redis        *redis.Client
	UserCacheTTL time.Duration
	CORSOrigins  []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	checks := map[string]handler.Pinger{
		"database": func(ctx context.Context) error { return database.Ping(ctx, cfg.DB) },
	}
	if cfg.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return cfg.Redis.Ping(ctx).Err() }
	}
	healthHandler := handler.NewHealthHandler(serviceName, checks)

	// Infrastructure endpoints are served at the root and under the base path
	r.GET("/metrics", metricsHandler)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	workspaceRepo := repository.NewWorkspaceRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	groupRepo := repository.NewGroupRepository(cfg.DB)
	statusRepo := repository.NewStatusRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	userCache := repository.NewUserCache(cfg.Redis, cfg.UserCacheTTL)
	tx := repository.NewTransactor(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, userCache, cfg.Tokens, cfg.Metrics, cfg.Logger)
	workspaceService := service.NewWorkspaceService(workspaceRepo, boardRepo, tx, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(workspaceRepo, boardRepo, groupRepo, statusRepo, taskRepo, tx, cfg.Metrics, cfg.Logger)
	groupService := service.NewGroupService(workspaceRepo, boardRepo, groupRepo, cfg.Metrics, cfg.Logger)
	statusService := service.NewStatusService(workspaceRepo, boardRepo, statusRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(workspaceRepo, boardRepo, groupRepo, statusRepo, taskRepo, cfg.Metrics, cfg.Logger)
	seedService := service.NewSeedService(userRepo, workspaceRepo, boardRepo, groupRepo, statusRepo, taskRepo, tx, cfg.Logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Logger)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService, cfg.Logger)
	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	groupHandler := handler.NewGroupHandler(groupService, cfg.Logger)
	statusHandler := handler.NewStatusHandler(statusService, cfg.Logger)
	taskHandler := handler.NewTaskHandler(taskService, cfg.Logger)
	seedHandler := handler.NewSeedHandler(seedService, cfg.Logger)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
	}

	authMiddleware := middleware.Auth(cfg.Tokens)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware, authHandler.Me)
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/workspaces", workspaceHandler.ListWorkspaces)
		protected.POST("/workspaces", workspaceHandler.CreateWorkspace)
		protected.PUT("/workspaces/:id", workspaceHandler.UpdateWorkspace)
		protected.DELETE("/workspaces/:id", workspaceHandler.DeleteWorkspace)

		protected.GET("/boards", boardHandler.ListBoards)
		protected.POST("/boards", boardHandler.CreateBoard)
		protected.GET("/boards/:id", boardHandler.GetBoard)
		protected.PUT("/boards/:id", boardHandler.UpdateBoard)
		protected.DELETE("/boards/:id", boardHandler.DeleteBoard)

		protected.GET("/groups", groupHandler.ListGroups)
		protected.POST("/groups", groupHandler.CreateGroup)
		protected.PUT("/groups/:id", groupHandler.UpdateGroup)
		protected.DELETE("/groups/:id", groupHandler.DeleteGroup)

		protected.GET("/statuses", statusHandler.ListStatuses)
		protected.POST("/statuses", statusHandler.CreateStatus)
		protected.PUT("/statuses/:id", statusHandler.UpdateStatus)
		protected.DELETE("/statuses/:id", statusHandler.DeleteStatus)

		protected.GET("/tasks", taskHandler.ListTasks)
		protected.POST("/tasks", taskHandler.CreateTask)
		protected.GET("/tasks/:id", taskHandler.GetTask)
		protected.PUT("/tasks/:id", taskHandler.UpdateTask)
		protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

		protected.POST("/seed-demo-data", seedHandler.SeedDemoData)
	}

	return r
}
