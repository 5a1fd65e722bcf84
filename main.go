// File: estia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estia/config"
	"estia/database"
	agentRepoPkg "estia/database/repository/agent"
	appointmentRepoPkg "estia/database/repository/appointment"
	clientRepoPkg "estia/database/repository/client"
	propertyRepoPkg "estia/database/repository/property"
	"estia/handlers"
	"estia/middleware"
	"estia/routes"
	"estia/services/agent"
	"estia/services/appointment"
	"estia/services/client"
	"estia/services/matching"
	"estia/services/property"
	"estia/services/storage"
	"estia/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Photo storage is optional; without credentials the photo endpoints
	// report storage as unconfigured.
	var storageSvc storage.StorageService
	svc, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	} else {
		storageSvc = svc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	agentRepo := agentRepoPkg.NewMongoAgentRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	tracker := matching.NewVisibilityTracker(utils.GetCacheClient(), logger)
	matchService := &matching.DefaultMatchService{
		ClientRepo:   clientRepo,
		PropertyRepo: propertyRepo,
		Scorer:       matching.NewScorer(matching.DefaultWeights()),
		Tracker:      tracker,
	}

	agentService := &agent.DefaultAgentService{Repo: agentRepo}
	clientService := &client.DefaultClientService{Repo: clientRepo, Matches: matchService}
	propertyService := &property.DefaultPropertyService{
		Repo:    propertyRepo,
		Storage: storageSvc,
		Matches: matchService,
	}
	appointmentService := &appointment.DefaultAppointmentService{Repo: appointmentRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AgentRepo:   agentRepo,
		Agent:       handlers.NewAgentHandler(agentService),
		Client:      handlers.NewClientHandler(clientService),
		Property:    handlers.NewPropertyHandler(propertyService),
		Match:       handlers.NewMatchHandler(matchService, clientService, propertyService),
		Appointment: handlers.NewAppointmentHandler(appointmentService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
