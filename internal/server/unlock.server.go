package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"unlock-service/internal/config"
	hrest "unlock-service/internal/handler/http"
	"unlock-service/internal/repository"
	"unlock-service/internal/router"
	"unlock-service/internal/service"
	"unlock-service/internal/usecase"
)

func NewServer(cfg *config.AppConfig) *http.Server {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// --- DB connection ---
	dbpool, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repository.EnsureSchema(ctx, dbpool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// --- Init repos ---
	unlockRepo := repository.NewRepository(dbpool)

	// --- Mail transport ---
	sender := service.NewEmailSender(service.EmailConfig{
		SMTPHost:  cfg.SMTPHost,
		SMTPPort:  cfg.SMTPPort,
		Username:  cfg.SMTPUser,
		Password:  cfg.SMTPPass,
		FromEmail: cfg.FromEmail,
	}, logger)

	if !sender.Configured() {
		logger.Warn("smtp transport not configured, notifications will be skipped")
	}

	// --- Usecases ---
	uc := usecase.NewUnlockUsecase(unlockRepo, sender, cfg.AdminEmail, logger)

	// --- Handlers ---
	unlockHandler := hrest.NewUnlockHandler(uc)
	healthHandler := hrest.NewHealthHandler(unlockRepo, cfg)

	// --- HTTP routes ---
	r := chi.NewRouter()
	r = router.SetupRoutes(r, unlockHandler, healthHandler).(*chi.Mux)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
