package main

import (
	"log"
	"net/http"

	"github.com/clubedepontos/loyaltyhook/config"
	handler "github.com/clubedepontos/loyaltyhook/internal/handler/http"
	"github.com/clubedepontos/loyaltyhook/internal/middleware"
	"github.com/clubedepontos/loyaltyhook/internal/models"
	"github.com/clubedepontos/loyaltyhook/internal/points"
	"github.com/clubedepontos/loyaltyhook/internal/service"
	"github.com/clubedepontos/loyaltyhook/internal/shopify"
	"github.com/clubedepontos/loyaltyhook/internal/signature"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// club ladder
	tiers := models.DefaultTiers()
	if cfg.TiersFile != "" {
		tiers, err = models.LoadTiers(cfg.TiersFile)
		if err != nil {
			logger.Fatal("Error loading tier table", zap.Error(err))
		}
		logger.Info("Loaded tier table", zap.String("file", cfg.TiersFile), zap.Int("tiers", len(tiers)))
	}

	if cfg.AdminGraphQLEndpoint == "" || cfg.AdminAPIToken == "" || cfg.WebhookSecret == "" {
		logger.Warn("Admin API credentials or webhook secret unset, webhook requests will be rejected")
	}

	// dependency injection
	store := shopify.NewClient(cfg.AdminGraphQLEndpoint, cfg.AdminAPIToken)
	calc := points.NewCalculator(tiers)
	webhookService := service.NewWebhookService(store, calc, logger)
	verifier := signature.NewVerifier(cfg.WebhookSecret)
	webhookHandler := handler.NewWebhookHandler(webhookService, verifier, cfg, logger)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	// the webhook handler answers its own 405 with a JSON body
	router.Handle("/api/shopify/webhooks/orders/created", webhookHandler.OrderCreated())
	router.Get("/api/ping", handler.Ping())

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
