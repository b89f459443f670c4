package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultRestConfig returns the baseline REST configuration. File and
// environment values override it.
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port:        "8080",
		MetricsPort: "9100",
		Database: DatabaseSettings{
			Type: SqliteDbType,
		},
		Calls: CallSettings{
			RingTimeoutSeconds: 60,
			MaxBillableMinutes: 60,
			SweepIntervalSecs:  5,
		},
		RateLimit: RateLimitSettings{
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Session: SessionSettings{
			TTLMinutes: 60 * 24,
		},
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
	}
}

// InitializeRestConfig loads the REST configuration from a YAML file with
// XAOSAO_-prefixed environment variable overrides, then validates it.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	cfg := DefaultRestConfig()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("XAOSAO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional when environment variables carry the settings.
		fmt.Fprintf(os.Stderr, "Warning: could not read config file %s: %v\n", configPath, err)
	} else {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvironmentOverrides applies the plain environment variables used in
// container deployments; these take precedence over the file.
func applyEnvironmentOverrides(cfg *RestConfig) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if dbType := os.Getenv("DATABASE_TYPE"); dbType != "" {
		cfg.Database.Type = dbType
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.Host = host
	}
	if key := os.Getenv("CDN_API_KEY"); key != "" {
		cfg.CDN.APIKey = key
	}
}
