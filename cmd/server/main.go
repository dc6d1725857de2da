package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dlvery/dlvery/internal/audit"
	auditdomain "github.com/dlvery/dlvery/internal/audit/domain"
	audithandler "github.com/dlvery/dlvery/internal/audit/handler"
	"github.com/dlvery/dlvery/internal/delivery"
	deliverydomain "github.com/dlvery/dlvery/internal/delivery/domain"
	deliverycommand "github.com/dlvery/dlvery/internal/delivery/usecase/command"
	"github.com/dlvery/dlvery/internal/inventory"
	inventorydomain "github.com/dlvery/dlvery/internal/inventory/domain"
	inventorycommand "github.com/dlvery/dlvery/internal/inventory/usecase/command"
	"github.com/dlvery/dlvery/internal/user"
	userdomain "github.com/dlvery/dlvery/internal/user/domain"
	"github.com/dlvery/dlvery/kafka"
	"github.com/dlvery/dlvery/pkg/database"
	"github.com/dlvery/dlvery/pkg/logger"
	"github.com/dlvery/dlvery/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "dlvery-backend")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting dlvery backend")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "dlvery"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Separate raw connection for health pings, kept off the repository pool
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health-check connection")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&inventorydomain.Inventory{},
		&deliverydomain.Delivery{},
		&auditdomain.AuditLog{},
		&userdomain.User{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka is optional; without brokers the engine runs without events
	var events deliverycommand.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
		events = publisher
	}

	recorder, err := audit.InitializeRecorder(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize audit recorder")
	}

	locks := inventorycommand.NewSKULocks()

	inventoryHandler, err := inventory.InitializeHTTPHandler(db, locks)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	deliveryHandler, err := delivery.InitializeHTTPHandler(db, recorder, events)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize delivery handler")
	}

	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	auditHandler := audithandler.NewAuditHandler(recorder)

	router := mux.NewRouter()
	inventoryHandler.RegisterRoutes(router)
	inventoryHandler.RegisterHealthCheck(router, sqlDB)
	deliveryHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	auditHandler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "http-server")

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
