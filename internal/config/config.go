package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the service configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Logger   LoggerConfig   `yaml:"logger"`
	JWT      JWTConfig      `yaml:"jwt"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" env:"SERVER_PORT"`
	Mode            string        `yaml:"mode" env:"GIN_MODE"`
	BasePath        string        `yaml:"base_path" env:"BASE_PATH"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver" env:"DB_DRIVER"`
	DSN             string        `yaml:"dsn" env:"DATABASE_URL"`
	Host            string        `yaml:"host" env:"DB_HOST"`
	Port            int           `yaml:"port" env:"DB_PORT"`
	User            string        `yaml:"user" env:"DB_USER"`
	Password        string        `yaml:"password" env:"DB_PASSWORD"`
	Name            string        `yaml:"name" env:"DB_NAME"`
	SSLMode         string        `yaml:"sslmode" env:"DB_SSLMODE"`
	Path            string        `yaml:"path" env:"DB_PATH"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// RedisConfig enables cross-instance change events when URL or Addr is set
type RedisConfig struct {
	URL      string `yaml:"url" env:"REDIS_URL"`
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	Channel  string `yaml:"channel" env:"REDIS_CHANNEL"`
}

type LoggerConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// JWTConfig enables bearer auth on mutating routes when Secret is set
type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
}

type MetricsConfig struct {
	CollectSchedule string `yaml:"collect_schedule" env:"METRICS_COLLECT_SCHEDULE"`
}

// Enabled reports whether redis is configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

// GetDSN returns the connection string for the configured driver
func (d DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		if d.Path != "" {
			return d.Path
		}
		return d.DSN
	}
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Mode:            "debug",
			BasePath:        "/api",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "fleet",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Channel: "fleet-fields:changes",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			CollectSchedule: "@every 60s",
		},
	}
}

// Load builds the configuration: defaults, then .env, then the yaml file
// at path if it exists, then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	// .env is optional; missing file is not an error
	_ = godotenv.Load()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	return cfg, nil
}
