package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the relational store.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}
	return nil
}

// RedisSettings holds the session store connection settings. When Enabled is
// false the in-memory session store is used instead.
type RedisSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"min=0,max=65535"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}
	if s.Enabled && s.Host == "" {
		return fmt.Errorf("host is required when redis is enabled")
	}
	return nil
}

// CDNSettings holds the photo upload endpoint settings.
type CDNSettings struct {
	BaseURL   string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey    string `mapstructure:"api_key"`
	TimeoutMS int    `mapstructure:"timeout_ms" validate:"min=0"`
}

// Validate checks that all fields in CDNSettings are valid
func (s *CDNSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CDNSettings: %w", err)
	}
	return nil
}

// CallSettings holds the per-minute call billing knobs.
type CallSettings struct {
	RingTimeoutSeconds int `mapstructure:"ring_timeout_seconds" validate:"min=5,max=300"`
	MaxBillableMinutes int `mapstructure:"max_billable_minutes" validate:"min=1,max=600"`
	SweepIntervalSecs  int `mapstructure:"sweep_interval_seconds" validate:"min=1,max=300"`
}

// Validate checks that all fields in CallSettings are valid
func (s *CallSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CallSettings: %w", err)
	}
	return nil
}

// RingTimeout returns the ring window as a duration.
func (s *CallSettings) RingTimeout() time.Duration {
	return time.Duration(s.RingTimeoutSeconds) * time.Second
}

// SweepInterval returns the reaper interval as a duration.
func (s *CallSettings) SweepInterval() time.Duration {
	return time.Duration(s.SweepIntervalSecs) * time.Second
}

// RateLimitSettings holds the per-client limit applied to call initiation.
type RateLimitSettings struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"min=0"`
	Burst             int     `mapstructure:"burst" validate:"min=0"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}

// SessionSettings holds the auth session TTL.
type SessionSettings struct {
	TTLMinutes int `mapstructure:"ttl_minutes" validate:"min=1,max=43200"`
}

// Validate checks that all fields in SessionSettings are valid
func (s *SessionSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionSettings: %w", err)
	}
	return nil
}

// TTL returns the session lifetime as a duration.
func (s *SessionSettings) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// RestConfig aggregates every settings section of the REST application.
type RestConfig struct {
	Port        string            `mapstructure:"port" validate:"required"`
	MetricsPort string            `mapstructure:"metrics_port"`
	Database    DatabaseSettings  `mapstructure:"database"`
	Redis       RedisSettings     `mapstructure:"redis"`
	CDN         CDNSettings       `mapstructure:"cdn"`
	Calls       CallSettings      `mapstructure:"calls"`
	RateLimit   RateLimitSettings `mapstructure:"ratelimit"`
	Session     SessionSettings   `mapstructure:"session"`
	Logger      LoggerSettings    `mapstructure:"logger"`
}

// Validate checks every section of the RestConfig.
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	sections := []interface{ Validate() error }{
		&c.Database, &c.Redis, &c.CDN, &c.Calls, &c.RateLimit, &c.Session, &c.Logger,
	}
	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
