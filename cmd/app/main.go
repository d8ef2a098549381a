package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-crm/api"
	"mini-crm/internal/auth"
	"mini-crm/internal/config"
	"mini-crm/internal/database"
	"mini-crm/internal/domain"
	"mini-crm/internal/events"
	"mini-crm/internal/handler"
	"mini-crm/internal/mail"
	"mini-crm/internal/metrics"
	"mini-crm/internal/repository"
	"mini-crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected and migrated")

	// SQLC queries
	queries := database.New(db)

	// Репозитории
	userRepo := repository.NewUserRepository(db, queries)
	leadRepo := repository.NewLeadRepository(db, queries)

	// Интеграции
	publisher := newPublisher(cfg, logger)
	notifier := newNotifier(cfg, logger)

	// Use Cases
	authUC := usecase.NewAuthUseCase(
		userRepo,
		auth.NewBcryptHasher(cfg.BcryptCost),
		auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL),
		notifier,
		logger,
	)
	leadUC := usecase.NewLeadUseCase(leadRepo, publisher, logger)
	transferUC := usecase.NewTransferUseCase(leadUC, cfg.ImportWorkers, logger)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", cfg.ImportMaxBytes+(1<<20))))
	e.Use(metrics.Middleware())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(auth.Middleware(authUC, logger, "/auth/login", "/auth/register", "/health", "/metrics"))

	// Handlers
	apiHandler := handler.NewAPIHandler(authUC, leadUC, transferUC, cfg.ImportMaxBytes, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handler())

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}
	if closer, ok := publisher.(*events.RabbitMQPublisher); ok {
		if err := closer.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close RabbitMQ connection")
		}
	}

	logger.Info("Server exited")
}

// newPublisher подключается к RabbitMQ; без AMQP_URL события не публикуются.
func newPublisher(cfg config.Config, logger *logrus.Logger) domain.EventPublisher {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL is empty, lead events disabled")
		return events.NopPublisher{}
	}
	publisher, err := events.NewRabbitMQPublisher(cfg.AMQPURL)
	if err != nil {
		metrics.RecordIntegrationError("rabbitmq")
		logger.WithError(err).Warn("RabbitMQ unavailable, lead events disabled")
		return events.NopPublisher{}
	}
	logger.Info("RabbitMQ connected")
	return publisher
}

func newNotifier(cfg config.Config, logger *logrus.Logger) domain.WelcomeNotifier {
	if cfg.MailHost == "" {
		logger.Info("MAIL_HOST is empty, welcome mail disabled")
		return mail.NopSender{}
	}
	return mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword, cfg.MailFrom)
}
