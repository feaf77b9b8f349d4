package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/wildfire_dashboard/internal/backend"
	"github.com/shenikar/wildfire_dashboard/internal/config"
	v1 "github.com/shenikar/wildfire_dashboard/internal/handler/http/v1"
	"github.com/shenikar/wildfire_dashboard/internal/metrics"
	"github.com/shenikar/wildfire_dashboard/internal/notice"
	"github.com/shenikar/wildfire_dashboard/internal/repository"
	"github.com/shenikar/wildfire_dashboard/internal/scheduler"
	"github.com/shenikar/wildfire_dashboard/internal/service"
	"github.com/shenikar/wildfire_dashboard/internal/webhook"
	"github.com/shenikar/wildfire_dashboard/pkg/logger"
	"github.com/shenikar/wildfire_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/wildfire_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/wildfire_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Wildfire Dashboard API
// @version 1.0
// @description Wildfire hotspot map and burn scar analysis dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель и воркер вебхуков о найденной гари
	scarPublisher := webhook.NewRedisScarPublisher(redisClient)
	scarWorker := webhook.NewScarWorker(redisClient, log, cfg)
	scarWorker.Start(ctx)

	// Инициализация репозиториев
	feedCache := repository.NewFeedCache(redisClient, cfg.ListingCacheTTL, cfg.PayloadCacheTTL)
	analysisRepo := repository.NewAnalysisRepository(dbpool)

	backendClient := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	notices := notice.NewBoard(cfg.NoticeCapacity)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(
		backendClient, feedCache, analysisRepo, scarPublisher, notices, appMetrics, log, cfg,
	)

	// Как при открытии страницы: селекторы и живая лента
	go dashboardService.Bootstrap(ctx)

	refresher := scheduler.NewLiveRefresher(dashboardService, log, cfg.BackendTimeout)
	if err := refresher.Start(ctx, cfg.LiveRefreshSchedule); err != nil {
		log.Fatalf("Failed to start live feed refresher: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, notices, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	cancel()
	refresher.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
