package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"exerciselog/database"
	"exerciselog/docs"
	"exerciselog/internal/cache"
	"exerciselog/internal/config"
	"exerciselog/internal/controllers"
	"exerciselog/internal/logging"
	"exerciselog/internal/repository"
	"exerciselog/internal/services"
	"exerciselog/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logFormat := cfg.LogFormat
	if cfg.DevMode {
		logFormat = "console"
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: logFormat})

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Exercise Log API"
	docs.SwaggerInfo.Description = "Exercise catalog and per-session exercise log entries."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	database.MonitorDBConnections(ctx, db, 10*time.Second)

	// The catalog cache is optional; without REDIS_URL every listing hits the store.
	var (
		exerciseCache services.ExerciseCache
		cacheStatus   controllers.StatusReporter
	)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("exercise cache disabled")
		} else {
			defer redisClient.Close()
			exerciseCache = redisClient
			cacheStatus = redisClient
			log.Info().Dur("ttl", cfg.CacheTTL).Msg("exercise cache enabled")
		}
	}

	exerciseRepo := repository.NewExerciseRepository(db)
	exerciseLogRepo := repository.NewExerciseLogRepository(db)

	catalogService := services.NewCatalogService(exerciseRepo, exerciseCache)
	exerciseLogService := services.NewExerciseLogService(exerciseLogRepo)

	exerciseController := controllers.NewExerciseController(catalogService, cfg.LegacyErrors)
	exerciseLogController := controllers.NewExerciseLogController(exerciseLogService, cfg.LegacyErrors)
	healthController := controllers.NewHealthController(
		func(ctx context.Context) error { return database.Ping(ctx, db) },
		cacheStatus,
		cfg.DBDriver,
	)

	if cfg.DevMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(exerciseController, exerciseLogController, healthController)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Bool("legacy_errors", cfg.LegacyErrors).
			Msgf("API documentation: http://localhost:%s/swagger/index.html", cfg.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shut down")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
