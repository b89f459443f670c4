// cmd/xaosao-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	v1 "github.com/xaosao/xaosao-service/internal/api/rest/v1"
	"github.com/xaosao/xaosao-service/internal/app"
	"github.com/xaosao/xaosao-service/internal/infrastructure/cache"
	"github.com/xaosao/xaosao-service/internal/infrastructure/connector"
	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start servers with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *v1.RouteServices
	reaper   *app.CallReaper
	metrics  *metrics.Metrics
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}
	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	interactionRepo, err := persistence.NewGormInteractionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction repository: %w", err)
	}
	walletRepo, err := persistence.NewGormWalletRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet repository: %w", err)
	}
	topUpRepo, err := persistence.NewGormTopUpRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create top-up repository: %w", err)
	}
	catalogRepo, err := persistence.NewGormCatalogRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}
	bookingRepo, err := persistence.NewGormBookingRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking repository: %w", err)
	}
	callRepo, err := persistence.NewGormCallRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create call repository: %w", err)
	}
	reviewRepo, err := persistence.NewGormReviewRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create review repository: %w", err)
	}

	// Initialize session store
	var sessionStore cache.SessionStore
	if cfg.Redis.Enabled {
		sessionStore, err = cache.NewRedisSessionStore(&cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
	} else {
		sessionStore = cache.NewMemorySessionStore()
	}

	// Initialize connectors
	cdnConnector, err := connector.NewHTTPCDNConnector(&cfg.CDN, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create CDN connector: %w", err)
	}
	slipConnector := connector.NewQRSlipConnector()

	m := metrics.NewMetrics()

	// Initialize services
	accountService, err := app.NewAccountService(accountRepo, profileRepo, walletRepo, sessionStore, cfg.Session.TTL(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	profileService, err := app.NewProfileService(profileRepo, cdnConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}
	discoverService, err := app.NewDiscoverService(profileRepo, interactionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create discover service: %w", err)
	}
	interactionService, err := app.NewInteractionService(interactionRepo, profileRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction service: %w", err)
	}
	catalogService, err := app.NewCatalogService(catalogRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}
	bookingService, err := app.NewBookingService(bookingRepo, catalogRepo, walletRepo, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}
	walletService, err := app.NewWalletService(walletRepo, topUpRepo, slipConnector, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet service: %w", err)
	}
	callService, err := app.NewCallService(callRepo, catalogRepo, walletRepo, &cfg.Calls, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create call service: %w", err)
	}
	reviewService, err := app.NewReviewService(reviewRepo, bookingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}

	reaper := app.NewCallReaper(callService, cfg.Calls.SweepInterval(), log)

	return &appDependencies{
		services: &v1.RouteServices{
			AccountService:     accountService,
			ProfileService:     profileService,
			DiscoverService:    discoverService,
			InteractionService: interactionService,
			CatalogService:     catalogService,
			BookingService:     bookingService,
			WalletService:      walletService,
			CallService:        callService,
			ReviewService:      reviewService,
		},
		reaper:  reaper,
		metrics: m,
	}, nil
}

// startServerWithGracefulShutdown starts the API and metrics servers plus
// the call reaper, and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.metrics, &cfg.RateLimit)

	// Create HTTP servers
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting metrics server on port ", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server failed to start: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		if err := deps.reaper.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("call reaper failed: %w", err)
		}
		return nil
	})

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or a server error
	select {
	case <-groupCtx.Done():
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server forced to shutdown: %w", err)
	}

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
