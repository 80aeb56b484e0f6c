package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig
	Cache    CacheConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig
	Overdue        OverdueConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CacheConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
	Timeout         time.Duration
}

// Enabled reports whether calendar sync was configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

type OverdueConfig struct {
	Enabled  bool
	Schedule string
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(v, v.GetString("database.dsn"))
	if dbURL := v.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")

	cfg.Cache.Enabled = v.GetBool("cache.enabled")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	// Integrations
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.Timeout = v.GetDuration("google_calendar.timeout")

	cfg.Overdue.Enabled = v.GetBool("overdue.enabled")
	cfg.Overdue.Schedule = v.GetString("overdue.schedule")
	cfg.Overdue.Timezone = v.GetString("overdue.timezone")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "tasks.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", "5m")

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "UTC")
	v.SetDefault("google_calendar.timeout", "10s")

	v.SetDefault("overdue.enabled", false)
	v.SetDefault("overdue.schedule", "0 8 * * *")
	v.SetDefault("overdue.timezone", "UTC")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be debug, release or test, got %q", cfg.HTTPServer.Mode)
	}
	if cfg.Database.Driver == "" {
		return errors.New("database.driver is required")
	}
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive when the cache is enabled, got %d", cfg.Cache.Size)
	}
	if cfg.Overdue.Enabled && cfg.Overdue.Schedule == "" {
		return errors.New("overdue.schedule is required when the overdue job is enabled")
	}
	for key, tz := range map[string]string{
		"google_calendar.timezone": cfg.GoogleCalendar.Timezone,
		"overdue.timezone":         cfg.Overdue.Timezone,
	} {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
