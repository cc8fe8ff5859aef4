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
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/boundary"
	"github.com/shenikar/market_area_service/internal/config"
	v1 "github.com/shenikar/market_area_service/internal/handler/http/v1"
	"github.com/shenikar/market_area_service/internal/geocoder"
	"github.com/shenikar/market_area_service/internal/observability"
	"github.com/shenikar/market_area_service/internal/repository"
	"github.com/shenikar/market_area_service/internal/service"
	"github.com/shenikar/market_area_service/internal/webhook"
	"github.com/shenikar/market_area_service/pkg/logger"
	redisclient "github.com/shenikar/market_area_service/pkg/redis"

	_ "github.com/shenikar/market_area_service/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Market Area Selection API
// @version 1.0
// @description Selects a market area around a center point and reports the census boundaries it covers.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics, err := observability.NewCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Redis необязателен: без него границы не кешируются, а заявки уходят напрямую
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Клиент сервиса границ
	boundaryOpts := []boundary.Option{
		boundary.WithRateLimit(cfg.BoundaryRateLimit),
		boundary.WithLogger(log),
		boundary.WithMetrics(metrics),
	}
	if cfg.BoundaryBaseURL != "" {
		boundaryOpts = append(boundaryOpts, boundary.WithBaseURL(cfg.BoundaryBaseURL))
	}
	if redisClient != nil {
		boundaryOpts = append(boundaryOpts, boundary.WithCache(repository.NewBoundaryCache(redisClient), cfg.BoundaryCacheTTL))
	}
	fetcher := boundary.NewClient(boundaryOpts...)

	// Геокодер
	geocoderOpts := []geocoder.Option{
		geocoder.WithCountry(cfg.GeocoderCountry),
		geocoder.WithUserAgent(cfg.GeocoderUserAgent),
		geocoder.WithRateLimit(cfg.GeocoderRateLimit),
		geocoder.WithLogger(log),
		geocoder.WithMetrics(metrics),
	}
	if cfg.GeocoderURL != "" {
		geocoderOpts = append(geocoderOpts, geocoder.WithURL(cfg.GeocoderURL))
	}
	gc := geocoder.NewClient(geocoderOpts...)

	// Отправка заявок
	var publisher webhook.LeadPublisher
	if cfg.Submission != nil {
		sender := webhook.NewSender(cfg.Submission, cfg, log)
		if redisClient != nil {
			publisher = webhook.NewRedisLeadPublisher(redisClient)
			webhook.NewLeadWorker(redisClient, sender, log).Start(ctx)
		} else {
			publisher = webhook.NewDirectLeadPublisher(sender)
		}
	} else {
		log.Warn("Lead endpoint is not configured, submissions are disabled")
	}

	// Инициализация репозиториев
	sessionRepo := repository.NewSessionRepository()

	// Инициализация сервисов
	sessionService := service.NewSessionService(sessionRepo, fetcher, gc, publisher, cfg, log, metrics)
	service.NewJanitor(sessionRepo, cfg.SessionTTL, log, metrics).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	cancel()

	log.Info("Server gracefully stopped")
}
