package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "dev", cfg.App.AppEnv)
	assert.Equal(t, "Rp", cfg.App.CurrencySymbol)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.True(t, cfg.Seed.Sample)
	assert.Empty(t, cfg.Seed.File)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CURRENCY_SYMBOL", "IDR")
	t.Setenv("SEED_SAMPLE", "false")
	t.Setenv("SEED_FILE", "catalog.yaml")
	t.Setenv("LOGGER_LEVEL", "debug")

	cfg := LoadEnv()

	assert.Equal(t, "production", cfg.App.AppEnv)
	assert.Equal(t, "IDR", cfg.App.CurrencySymbol)
	assert.False(t, cfg.Seed.Sample)
	assert.Equal(t, "catalog.yaml", cfg.Seed.File)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadEnvBadBoolFallsBack(t *testing.T) {
	t.Setenv("SEED_SAMPLE", "definitely")
	cfg := LoadEnv()
	assert.True(t, cfg.Seed.Sample)
}
