// @title           Fleet Field Service API
// @version         1.0
// @description     장비/정비/현장 커스텀 필드 관리 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "fleet-field-api/docs" // Swagger docs import

	"fleet-field-api/internal/config"
	"fleet-field-api/internal/database"
	"fleet-field-api/internal/events"
	"fleet-field-api/internal/job"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/router"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
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
	zap.ReplaceGlobals(logger)

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Fleet Field Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConfig := database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		db = waitForDB(ctx, dbConfig, logger)
		if db == nil {
			logger.Info("Shutdown requested before database became available")
			return
		}
	} else {
		database.SetDB(db)
		logger.Info("Database connected successfully")
	}
	defer database.Close(db)

	if err := database.MigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	stopStats := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(stopStats)
	logger.Info("Metrics initialized")

	// Change events: in-process broker, optionally fanned out through redis
	broker := events.NewBroker(logger)
	var publisher events.Publisher = broker
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("Failed to connect to redis, change events stay in-process", zap.Error(err))
		} else {
			defer redisClient.Close()
			publisher = events.NewRedisPublisher(redisClient, cfg.Redis.Channel).WithFallback(broker)
			go events.NewRedisRelay(redisClient, cfg.Redis.Channel, broker, logger).Run(ctx)
			logger.Info("Redis change event relay started", zap.String("channel", cfg.Redis.Channel))
		}
	}

	// Background stats refresh
	scheduler := cron.New()
	statsJob := job.NewStatsJob(repository.NewStatsRepository(db), m, logger)
	if _, err := statsJob.Schedule(scheduler, cfg.Metrics.CollectSchedule); err != nil {
		logger.Warn("Failed to schedule stats job", zap.Error(err))
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        m,
		Broker:         broker,
		Publisher:      publisher,
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
		logger.Info("Fleet Field Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// waitForDB retries the connection every 5 seconds until it succeeds or ctx ends
func waitForDB(ctx context.Context, cfg database.Config, logger *zap.Logger) *gorm.DB {
	connected := make(chan *gorm.DB, 1)
	database.NewAsync(cfg, 5*time.Second, logger, func(db *gorm.DB) {
		connected <- db
	})

	select {
	case db := <-connected:
		return db
	case <-ctx.Done():
		return nil
	}
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

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
