package commands

import (
	"fmt"
	"os"
	"sync"

	"gorm.io/gorm"

	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

var (
	metricsOnce     sync.Once
	metricsInstance *metrics.Metrics
)

// setupMetrics returns the process-wide metrics instance. The prometheus
// collectors register with the default registry, so they must be built
// once even when several command handlers need them.
func setupMetrics() *metrics.Metrics {
	metricsOnce.Do(func() {
		metricsInstance = metrics.NewMetrics()
	})
	return metricsInstance
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupConfig loads the shared REST configuration; the CLI reuses its
// database and call sections.
func setupConfig() (*config.RestConfig, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

func setupDatabase(cfg *config.RestConfig) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
