package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "fieldtech/docs"
	"fieldtech/internal/adapter/http/handlers"
	"fieldtech/internal/adapter/http/routes"
	"fieldtech/internal/config"
	"fieldtech/internal/infrastructure/gateway"
	"fieldtech/internal/infrastructure/geocoding"
	"fieldtech/internal/usecase"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Technician API
// @version         1.0
// @description     Service order workflow for field technicians on top of the service order gateway.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateAPI(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	restGateway, err := gateway.NewRESTGateway(gateway.Config{BaseURL: cfg.Gateway.BaseURL, Timeout: cfg.Gateway.Timeout})
	if err != nil {
		log.Fatalf("Failed to create gateway client: %v", err)
	}
	location, err := cfg.Orders.Location()
	if err != nil {
		log.Fatalf("Invalid time zone: %v", err)
	}

	notifications := usecase.NewNotificationCenter(cfg.Orders.NotificationTTL, nil)
	coordinator := usecase.NewOrderCoordinator(restGateway, notifications, usecase.CoordinatorConfig{
		MinimumDurationSeconds: cfg.Orders.MinimumDurationSeconds,
		Location:               location,
	}, nil)
	auth := usecase.NewAuthUseCase(restGateway, notifications)

	var geocoder interfaces.IGeocodeQueue
	if cfg.Geocoding.Enabled {
		nominatim := geocoding.NewNominatim(geocoding.NominatimConfig{
			BaseURL:   cfg.Geocoding.BaseURL,
			UserAgent: cfg.Geocoding.UserAgent,
			Email:     cfg.Geocoding.Email,
			Timeout:   cfg.Geocoding.Timeout,
		})
		geocoder = geocoding.NewQueue(nominatim, geocoding.QueueConfig{
			RequestsPerSecond: cfg.Geocoding.RequestsPerSecond,
			Concurrency:       cfg.Geocoding.Concurrency,
			MaxRetries:        cfg.Geocoding.MaxRetries,
		})
	} else {
		logger.Info(ctx, "geocoding disabled")
	}
	directory := usecase.NewDirectoryUseCase(restGateway, coordinator, geocoder, notifications)

	router := routes.NewAPIRouter(routes.APIHandlers{
		Orders:        handlers.NewOrderHandler(coordinator),
		Materials:     handlers.NewMaterialHandler(coordinator),
		Signature:     handlers.NewSignatureHandler(coordinator),
		Notifications: handlers.NewNotificationHandler(notifications),
		Auth:          handlers.NewAuthHandler(auth),
		Directory:     handlers.NewDirectoryHandler(directory),
	})

	if err := routes.Run(ctx, router, cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
