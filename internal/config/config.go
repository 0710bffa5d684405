package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Sessions   SessionsConfig   `toml:"sessions"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	CORS       CORSConfig       `toml:"cors"`
	Catalog    CatalogConfig    `toml:"catalog"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingAPIConfig клиент booking API для визарда
type BookingAPIConfig struct {
	URL     string `toml:"url" env:"BOOKING_API_URL"`
	Timeout int    `toml:"timeout"` // секунды
}

// SessionsConfig сессии визарда в памяти
type SessionsConfig struct {
	TTLMinutes      int `toml:"ttl_minutes"`
	MaxSessions     int `toml:"max_sessions"`
	CleanupInterval int `toml:"cleanup_interval"` // секунды
}

// RateLimitConfig ограничение частоты создания заявок с одного IP
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled" env:"RATE_LIMIT_ENABLED"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
	TrustProxy        bool `toml:"trust_proxy"`
}

// CORSConfig настройки CORS для фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// CatalogConfig кэш каталога пакетов в визарде
type CatalogConfig struct {
	RefreshInterval int `toml:"refresh_interval"` // секунды, 0 - загрузить один раз
}

// Load читает TOML файл и накладывает переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения, которые не обязательно указывать в файле
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "rhumuda-booking",
		},
		BookingAPI: BookingAPIConfig{
			URL:     "http://localhost:8080",
			Timeout: 10,
		},
		Sessions: SessionsConfig{
			TTLMinutes:      30,
			MaxSessions:     10000,
			CleanupInterval: 60,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 10,
			Burst:             3,
		},
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "":
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	case c.Sessions.TTLMinutes <= 0:
		return fmt.Errorf("%w: sessions.ttl_minutes must be positive", ErrInvalidConfig)
	case c.Sessions.CleanupInterval <= 0:
		return fmt.Errorf("%w: sessions.cleanup_interval must be positive", ErrInvalidConfig)
	case c.BookingAPI.Timeout <= 0:
		return fmt.Errorf("%w: booking_api.timeout must be positive", ErrInvalidConfig)
	case c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0):
		return fmt.Errorf("%w: rate_limit requests_per_minute and burst must be positive", ErrInvalidConfig)
	case c.Metrics.Enabled && c.Metrics.Path == "":
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if _, err := url.ParseRequestURI(c.BookingAPI.URL); err != nil {
		return fmt.Errorf("%w: booking_api.url: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Duration хелперы

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

func (s SessionsConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}
