package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-card-ledger/docs"
	"github.com/sbilibin2017/gw-card-ledger/internal/config"
	"github.com/sbilibin2017/gw-card-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-card-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-card-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-card-ledger/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-card-ledger API
// @version 1.0.0
// @description Ledger for prepaid and gift cards: balances, spending history and import/export
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, storage backend, event writer and HTTP server,
// and blocks until a shutdown signal arrives or the server fails.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Open storage
	store, closeStore, err := repositories.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Log.Errorw("storage close error", "error", err)
		}
	}()

	// Initialize ledger
	opts := []services.LedgerOption{services.WithAutoArchive(cfg.Ledger.AutoArchive)}
	if cfg.Kafka.Enabled() {
		kw := newKafkaWriter(cfg.Kafka)
		defer kw.Close()
		opts = append(opts, services.WithKafkaWriter(kw))
		logger.Log.Infof("Publishing ledger events to Kafka topic %s", cfg.Kafka.Topic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, ledger events are not published")
	}
	ledger := services.NewLedger(store, opts...)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler: newRouter(cfg, ledger),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.App.Host, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

func newKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires the API, applying the bearer-token guard when a secret is configured.
func newRouter(cfg *config.Config, ledger *services.Ledger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		if cfg.Auth.Enabled() {
			r.Use(middlewares.AuthMiddleware(jwt.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)))
		}
		handlers.RegisterCardRoutes(r, ledger)
		handlers.RegisterTransactionRoutes(r, ledger)
		handlers.RegisterDataRoutes(r, ledger)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	return r
}
