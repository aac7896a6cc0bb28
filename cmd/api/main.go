package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskflow-api/internal/auth"
	"taskflow-api/internal/config"
	"taskflow-api/internal/database"
	"taskflow-api/internal/job"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
	"taskflow-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Taskflow API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if err := database.AutoMigrateWithRetry(db, logger, 5); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.New(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	statsDone := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(statsDone)

	// Redis is optional; without it the user cache is disabled
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = database.NewRedis(context.Background(), database.RedisConfig{
			URL:      cfg.Redis.URL,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn("Failed to connect to Redis, user cache disabled", zap.Error(err))
			rdb = nil
		} else {
			logger.Info("Redis connected successfully")
			defer rdb.Close()
		}
	}

	// Scheduled jobs
	scheduler := job.NewScheduler(logger)
	collector := metrics.NewBusinessMetricsCollector(
		repository.NewUserRepository(db),
		repository.NewWorkspaceRepository(db),
		repository.NewBoardRepository(db),
		repository.NewTaskRepository(db),
		m,
		logger,
	)
	if err := scheduler.Register("business_metrics", cfg.Jobs.MetricsSchedule, job.NewMetricsJob(collector, logger)); err != nil {
		logger.Fatal("Failed to schedule metrics job", zap.Error(err))
	}
	if cfg.Jobs.OrphanSweepEnabled {
		sweep := job.NewOrphanSweepJob(
			repository.NewTaskRepository(db),
			repository.NewGroupRepository(db),
			repository.NewStatusRepository(db),
			m,
			logger,
		)
		if err := scheduler.Register("orphan_sweep", cfg.Jobs.OrphanSweepSchedule, sweep); err != nil {
			logger.Fatal("Failed to schedule orphan sweep job", zap.Error(err))
		}
	}
	go collector.Collect(context.Background())
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:           db,
		Logger:       logger,
		Tokens:       auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration),
		BasePath:     cfg.Server.BasePath,
		Metrics:      m,
		Redis:        rdb,
		UserCacheTTL: cfg.Redis.UserCacheTTL,
		CORSOrigins:  cfg.Server.CORSOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Taskflow API started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	scheduler.Stop(ctx)

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
