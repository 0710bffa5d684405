package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "rhumuda"
password = "secret"
dbname = "bookings"

[logs]
level = "debug"

[booking_api]
url = "http://api:8080"
timeout = 5

[rate_limit]
enabled = true
requests_per_minute = 20
burst = 5

[cors]
allowed_origins = ["https://rhumuda.com"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 5432, cfg.Database.Port, "default kept")
	assert.Equal(t, 30, cfg.Sessions.TTLMinutes, "default kept")
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"https://rhumuda.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "postgres://rhumuda:secret@db:5432/bookings?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "db"
dbname = "bookings"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := Default()
		cfg.Database.User = "u"
		cfg.Database.DBName = "d"
		return cfg
	}
	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"session ttl", func(c *Config) { c.Sessions.TTLMinutes = 0 }},
		{"rate limit burst", func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.Burst = 0 }},
		{"booking api url", func(c *Config) { c.BookingAPI.URL = "not a url" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
