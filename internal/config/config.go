package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/shineart/studiopos/internal/logger"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"StudioPOS"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"studiopos"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Output struct {
		Bills    string `envconfig:"OUTPUT_BILLS_DIR" default:"bills"`
		Invoices string `envconfig:"OUTPUT_INVOICES_DIR" default:"invoices"`
		Reports  string `envconfig:"OUTPUT_REPORTS_DIR" default:"reports"`
		Bookings string `envconfig:"OUTPUT_BOOKINGS_DIR" default:"bookings"`
	}

	Studio struct {
		Profile  string `envconfig:"STUDIO_PROFILE" default:"studio.yaml"`
		TimeZone string `envconfig:"STUDIO_TIMEZONE" default:"Asia/Colombo"`
	}

	Printer struct {
		URL     string        `envconfig:"PRINTER_URL"`
		Timeout time.Duration `envconfig:"PRINTER_TIMEOUT" default:"10s"`
	}

	JWT struct {
		Secret string        `envconfig:"JWT_SECRET"`
		TTL    time.Duration `envconfig:"JWT_TTL" default:"12h"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"console"`
		Output string `envconfig:"LOG_OUTPUT" default:"stderr"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Logger returns the logging setup described by the LOG_* variables.
func (c *Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = strings.ToLower(c.Log.Format)
	cfg.Output = c.Log.Output

	return cfg
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
