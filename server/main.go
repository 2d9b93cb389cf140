package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waitwise/api/routes"
	"waitwise/internal/notifications"
	"waitwise/internal/shared/config"
	"waitwise/internal/shared/database"
	"waitwise/internal/shared/middleware"
	"waitwise/internal/store"
	"waitwise/pkg/logger"
	"waitwise/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title                       Waitlist Management API
// @version                     1.0
// @description                 Live waitlist, table allocation and staff console for venue events.
// @BasePath                    /v1
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	// Rebuild the logger now that .env and the gin mode are applied
	appLogger = logger.New()
	logger.SetDefault(appLogger)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("Failed to connect to Redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Rate limiting needs Redis for its shared window
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.Redis != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			GuestRequests:   cfg.RateLimit.GuestRequests,
			StaffRequests:   cfg.RateLimit.StaffRequests,
			AuthRequests:    cfg.RateLimit.AuthRequests,
			SyncRequests:    cfg.RateLimit.SyncRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	publisher := newPublisher(cfg, appLogger)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing event publisher", slog.Any("error", err))
		}
	}()

	alertConsumer := startAlertConsumer(cfg, appLogger)
	if alertConsumer != nil {
		defer func() {
			if err := alertConsumer.Stop(); err != nil {
				appLogger.Error("Error stopping guest alert consumer", slog.Any("error", err))
			}
		}()
	}

	memStore := store.NewMemoryStore()
	if cfg.SeedDemoData {
		if err := store.SeedDemoData(context.Background(), memStore); err != nil {
			appLogger.Error("Failed to seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
		appLogger.Info("Demo events seeded",
			slog.String("festival_event_id", store.DemoFestivalEventID),
			slog.String("legacy_event_id", store.DemoLegacyEventID),
		)
	}

	router := setupRouter(cfg, db, memStore, publisher, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_base", cfg.GetAPIBasePath()),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("redis", db.Redis != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", slog.Any("error", err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

// newPublisher connects to Kafka when enabled and falls back to a no-op sink
func newPublisher(cfg *config.Config, appLogger *logger.Logger) notifications.Publisher {
	if !cfg.Kafka.Enabled {
		return notifications.NoopPublisher{}
	}

	producerConfig := notifications.DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.Topic = cfg.Kafka.Topic
	producerConfig.ClientID = cfg.Kafka.ClientID

	publisher, err := notifications.NewKafkaPublisher(producerConfig)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka publisher, continuing without domain events", slog.Any("error", err))
		return notifications.NoopPublisher{}
	}
	return publisher
}

// startAlertConsumer runs the guest alert workers when enabled
func startAlertConsumer(cfg *config.Config, appLogger *logger.Logger) notifications.AlertConsumer {
	if !cfg.Kafka.Enabled || !cfg.Kafka.AlertsEnabled {
		return nil
	}

	consumerConfig := notifications.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.Topic}
	consumerConfig.GroupID = cfg.Kafka.AlertsGroupID

	consumer, err := notifications.NewKafkaAlertConsumer(consumerConfig, notifications.NewLogNotifier(appLogger))
	if err != nil {
		appLogger.Error("Failed to initialize guest alert consumer", slog.Any("error", err))
		return nil
	}
	if err := consumer.StartConsumers(context.Background(), cfg.Kafka.AlertWorkers); err != nil {
		appLogger.Error("Failed to start guest alert consumer", slog.Any("error", err))
		_ = consumer.Stop()
		return nil
	}
	return consumer
}

func setupRouter(cfg *config.Config, db *database.DB, s store.Store, publisher notifications.Publisher, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(appLogger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	routes.NewRouter(cfg, db, s, publisher).SetupRoutes(engine)

	return engine
}
