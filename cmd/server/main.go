package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savings-tracker/internal/config"
	"savings-tracker/internal/database"
	"savings-tracker/internal/handlers"
	"savings-tracker/internal/llm"
	"savings-tracker/internal/logger"
	"savings-tracker/internal/middleware"
	"savings-tracker/internal/mongostore"
	"savings-tracker/internal/repositories"
	"savings-tracker/internal/retrieval"
	"savings-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const tokenPurgeInterval = time.Hour

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		Level:       cfg.Log.Level,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	activity := services.NewActivityLogger(log)

	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(&cfg.Security)
	authService := services.NewAuthService(
		store.Users,
		store.BlacklistedTokens,
		passwordService,
		tokenService,
		activity,
		metrics,
		log,
	)
	trackerService := services.NewTrackerService(store.Ledger, store.Salaries, activity, metrics, log)

	adviceService, closeAdvice, err := buildAdviceService(cfg, store, activity, metrics, log)
	if err != nil {
		return err
	}
	defer closeAdvice()

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.RunCleanup(ctx)
	go purgeExpiredTokens(ctx, authService, log)

	e := newServer(cfg, log)
	registerRoutes(e, routeDeps{
		cfg:          cfg,
		limiter:      limiter,
		tokenService: tokenService,
		blacklist:    store.BlacklistedTokens,
		auth:         handlers.NewAuthHandler(authService),
		tracker:      handlers.NewTrackerHandler(trackerService),
		advice:       handlers.NewAdviceHandler(adviceService),
		dev:          handlers.NewDevHandler(store.Ledger, services.NewLedgerGenerator(0), log),
		health:       handlers.NewHealthCheckHandler(store.Health),
		docs:         handlers.NewDocsHandler(),
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "environment", cfg.Server.Environment, "store", cfg.Store.Driver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// openStore connects the configured backend and returns its repositories
// with a matching close function
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repositories.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		ms, err := mongostore.Connect(ctx, &cfg.Mongo, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		closeFn := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := ms.Close(closeCtx); err != nil {
				log.Warn("failed to close MongoDB client", "error", err)
			}
		}
		return ms.Repositories(), closeFn, nil

	default:
		db, err := database.Initialize(ctx, cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Warn("failed to close database", "error", err)
			}
		}
		return repositories.NewGormStore(db), closeFn, nil
	}
}

// buildAdviceService returns a nil service when no model credential is
// configured; the advice endpoint then answers SYSTEM_004.
func buildAdviceService(
	cfg *config.Config,
	store *repositories.Store,
	activity services.ActivityLoggerInterface,
	metrics services.MetricsRecorderInterface,
	log *slog.Logger,
) (services.AdviceServiceInterface, func(), error) {
	if !cfg.Advice.AdviceEnabled() {
		log.Warn("OPENAI_API_KEY not set, financial advice disabled")
		return nil, func() {}, nil
	}

	qdrantClient, err := retrieval.NewQdrantClient(&cfg.Qdrant)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	index := retrieval.NewQdrantIndex(
		qdrantClient,
		retrieval.NewOpenAIEmbedder(&cfg.Advice),
		cfg.Qdrant.Collection,
		cfg.Qdrant.ContentKey,
		log,
	)

	adviceService := services.NewAdviceService(
		store.Ledger,
		index,
		llm.NewOpenAIClient(&cfg.Advice),
		&cfg.Advice,
		activity,
		metrics,
		log,
	)

	closeFn := func() {
		if err := qdrantClient.Close(); err != nil {
			log.Warn("failed to close Qdrant client", "error", err)
		}
	}
	return adviceService, closeFn, nil
}

func purgeExpiredTokens(ctx context.Context, authService services.AuthServiceInterface, log *slog.Logger) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := authService.PurgeExpiredTokens(ctx); err != nil {
				log.Warn("failed to purge expired tokens", "error", err)
			}
		}
	}
}

func newServer(cfg *config.Config, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(log))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))

	return e
}
