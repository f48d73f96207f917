package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/go-playground/assert.v1"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assert.Equal(t, cfg.Port, "8000")
	assert.Equal(t, cfg.AdminPassword, "admin123")
	assert.Equal(t, cfg.SessionTTL, 2*time.Hour)
	assert.Equal(t, cfg.SeedSampleMenu, true)
	assert.Equal(t, cfg.ServiceChargeRate.Equal(decimal.RequireFromString("0.10")), true)
	assert.Equal(t, cfg.AllowOrigins, []string{"http://localhost:9000"})
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSESSION_TTL=15m\nALLOW_ORIGINS=http://a.test,http://b.test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets process variables; make sure they do not leak.
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("ALLOW_ORIGINS", "")
	os.Unsetenv("PORT")
	os.Unsetenv("SESSION_TTL")
	os.Unsetenv("ALLOW_ORIGINS")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assert.Equal(t, cfg.Port, "9090")
	assert.Equal(t, cfg.SessionTTL, 15*time.Minute)
	assert.Equal(t, cfg.AllowOrigins, []string{"http://a.test", "http://b.test"})
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_PASSWORD=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_PASSWORD", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assert.Equal(t, cfg.AdminPassword, "from-env")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "negative service charge", key: "SERVICE_CHARGE_RATE", val: "-0.5"},
		{name: "malformed service charge", key: "SERVICE_CHARGE_RATE", val: "ten percent"},
		{name: "zero session ttl", key: "SESSION_TTL", val: "0s"},
		{name: "malformed duration", key: "ADMIN_TOKEN_TTL", val: "soon"},
		{name: "malformed bool", key: "SEED_SAMPLE_MENU", val: "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestServiceChargeRateIsExact(t *testing.T) {
	t.Setenv("SERVICE_CHARGE_RATE", "0.125")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assert.Equal(t, cfg.ServiceChargeRate.String(), "0.125")
	assert.Equal(t, decimal.NewFromInt(200).Mul(cfg.ServiceChargeRate).String(), "25")
}
