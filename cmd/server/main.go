package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airdata-service/internal/infrastructure/config"
	"airdata-service/internal/infrastructure/persistence"
	"airdata-service/internal/interface/event"
	"airdata-service/internal/interface/httpapi"
	storeRepo "airdata-service/internal/interface/repository"
	"airdata-service/internal/usecase"
	"airdata-service/pkg/logger"
	"airdata-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Airdata Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection (document store)
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection (ledger store)
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := storeRepo.AutoMigrateLedger(gormDB); err != nil {
		log.Fatal("Failed to migrate ledger tables", "error", err)
	}

	// Set up Neo4j connection (graph store)
	log.Info("Connecting to Neo4j")
	neo4jDriver, err := persistence.NewNeo4jDriver(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", "error", err)
	}

	// Set up event publisher
	var publisher = event.NewNoopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		log.Info("Publishing lifecycle events to Kafka", "topic", cfg.KafkaTopic)
		publisher = event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	// Set up repositories
	passengerRepo := storeRepo.NewMongoPassengerRepository(db)
	aircraftRepo := storeRepo.NewMongoAircraftRepository(db)
	airportRepo := storeRepo.NewMongoAirportRepository(db)
	ticketRepo := storeRepo.NewGormTicketRepository(gormDB)
	baggageRepo := storeRepo.NewGormBaggageRepository(gormDB)
	graphRepo := storeRepo.NewNeo4jFlightGraphRepository(neo4jDriver)

	// Set up services
	federationService := usecase.NewFederationService(passengerRepo, airportRepo, ticketRepo, baggageRepo, graphRepo, publisher, log, cfg.StoreTimeout)
	aircraftService := usecase.NewAircraftService(aircraftRepo, log, cfg.StoreTimeout)
	routeService := usecase.NewRouteService(graphRepo, log)

	// Set up HTTP server
	m := metrics.NewMetrics("airdata")
	apiHandler := httpapi.NewRouter(federationService, aircraftService, routeService, m, log)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := publisher.Close(); err != nil {
		log.Error("Event publisher close error", "error", err)
	}

	// Disconnect from the stores
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}
	if err := neo4jDriver.Close(context.Background()); err != nil {
		log.Error("Neo4j disconnect error", "error", err)
	}

	log.Info("Airdata Service stopped")
}
