package config

import (
	"os"
	"strconv"
)

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Seed   SeedConfig
}

type AppConfig struct {
	AppEnv         string
	CurrencySymbol string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SeedConfig struct {
	// Sample loads the built-in demo catalog when no seed file is given.
	Sample bool
	// File is an optional YAML catalog to load at startup.
	File string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			AppEnv:         getEnv("APP_ENV", "dev"),
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "Rp"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Seed: SeedConfig{
			Sample: getEnvBool("SEED_SAMPLE", true),
			File:   getEnv("SEED_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
