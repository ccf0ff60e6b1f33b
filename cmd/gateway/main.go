package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fieldtech/docs"
	"fieldtech/internal/adapter/http/handlers"
	"fieldtech/internal/adapter/http/middleware"
	"fieldtech/internal/adapter/http/routes"
	"fieldtech/internal/adapter/persistence/repository"
	"fieldtech/internal/config"
	"fieldtech/internal/infrastructure/database"
	"fieldtech/internal/usecase"
	"fieldtech/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Order Gateway
// @version         1.0
// @description     Reference REST gateway for service orders backed by DynamoDB.

// @host localhost:3000

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateGateway(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	if cfg.DynamoDB.CreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
	}

	location, err := cfg.Orders.Location()
	if err != nil {
		log.Fatalf("Invalid time zone: %v", err)
	}

	serviceOrders := usecase.NewServiceOrderUseCase(
		repository.NewServiceOrderDynamoRepository(ddb, cfg.DynamoDB.ServiceOrders),
		repository.NewClientDynamoRepository(ddb, cfg.DynamoDB.Clients),
		repository.NewRequestLedgerDynamoRepository(ddb, cfg.DynamoDB.RequestIDs),
		cfg.Auth.RequestIDTTL,
		location,
		nil,
	)
	if cfg.SeedDemo {
		n, err := serviceOrders.SeedDemo(ctx)
		if err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		logger.Info(ctx, "demo data seeded", "orders", n)
	}

	users := make([]usecase.GatewayUser, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		users = append(users, usecase.GatewayUser{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password, Role: u.Role})
	}
	if len(users) == 0 {
		logger.Warn(ctx, "no gateway users configured, every login will fail")
	}
	sessions := usecase.NewSessionUseCase(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)

	router := routes.NewGatewayRouter(routes.GatewayHandlers{
		ServiceOrders: handlers.NewServiceOrderHandler(serviceOrders),
		Auth:          handlers.NewGatewayAuthHandler(sessions, cfg.Auth.SecureCookie),
	}, sessions, middleware.NewRateLimiter(cfg.Auth.LoginPerMinute, 10*time.Minute))

	if err := routes.Run(ctx, router, cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
