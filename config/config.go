package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port                 string          `envconfig:"PORT" default:"8000"`
	GinMode              string          `envconfig:"GIN_MODE" default:"release"`
	AllowOrigins         []string        `envconfig:"ALLOW_ORIGINS" default:"http://localhost:9000"`
	SecretKey            string          `envconfig:"SECRET_KEY"`
	AdminPassword        string          `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	AdminTokenTTL        time.Duration   `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`
	SessionTTL           time.Duration   `envconfig:"SESSION_TTL" default:"2h"`
	SessionSweepInterval time.Duration   `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
	SeedSampleMenu       bool            `envconfig:"SEED_SAMPLE_MENU" default:"true"`
	WSPingInterval       time.Duration   `envconfig:"WS_PING_INTERVAL" default:"30s"`
	ServiceChargeRate    decimal.Decimal `envconfig:"SERVICE_CHARGE_RATE" default:"0.10"`
	LogLevel             string          `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout      time.Duration   `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads envFile into the environment when it exists, then decodes the
// environment into a Config. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD must not be empty")
	}
	if c.ServiceChargeRate.IsNegative() {
		return fmt.Errorf("SERVICE_CHARGE_RATE must not be negative, got %v", c.ServiceChargeRate)
	}
	for name, d := range map[string]time.Duration{
		"ADMIN_TOKEN_TTL":        c.AdminTokenTTL,
		"SESSION_TTL":            c.SessionTTL,
		"SESSION_SWEEP_INTERVAL": c.SessionSweepInterval,
		"SHUTDOWN_TIMEOUT":       c.ShutdownTimeout,
		"WS_PING_INTERVAL":       c.WSPingInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}
