package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/config"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/handler"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/observability"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/resilience"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/catalog"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/intent"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/session"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/stylist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envLoadErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if envLoadErr != nil {
		logger.Info("no .env file loaded, using system environment only")
	}

	metrics := observability.NewMetrics()

	// The model backend is optional: without it, intent classification
	// runs on deterministic rules.
	var chatModel model.ChatModel
	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			logger.Warn("failed to initialize chat model, using rule-based classification", zap.Error(err))
			chatModel = nil
		} else {
			logger.Info("chat model initialized", zap.String("model", cfg.AI.Model))
		}
	} else {
		logger.Info("model backend not configured, using rule-based classification")
	}

	intentSvc, err := intent.NewService(ctx, chatModel, metrics, logger)
	if err != nil {
		logger.Fatal("failed to initialize intent service", zap.Error(err))
	}

	var searcher catalog.Searcher
	if cfg.Catalog.MockMode {
		logger.Info("catalog running in mock mode")
		searcher = catalog.NewMockClient(logger)
	} else {
		searcher = catalog.NewClient(
			&http.Client{Timeout: cfg.Catalog.Timeout},
			cfg.Catalog.BaseURL,
			resilience.NewCircuitBreaker("roblox-catalog"),
			resilience.Config{
				MaxRetries:     cfg.Catalog.MaxRetries,
				InitialBackoff: cfg.Catalog.InitialBackoff,
			},
			logger,
		)
		logger.Info("catalog client initialized", zap.String("base_url", cfg.Catalog.BaseURL))
	}

	stylistSvc := stylist.NewService(
		session.NewStore(),
		searcher,
		intentSvc,
		metrics,
		logger,
		stylist.Config{
			SearchTimeout:  cfg.Catalog.Timeout,
			MaxOutfitSlots: cfg.Stylist.MaxOutfitSlots,
		},
	)

	router := handler.NewRouter(stylistSvc, metrics, logger)
	startServer(ctx, cfg.Server, router, logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("outfit agents backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
