// Package config loads the hosted variant's settings from the environment.
// The local variant configures itself with command-line flags instead.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Username      string
	Password      string
	SessionSecret string
	Port          int
	MetricsPort   string
	PageSize      int
	Env           string
	APIKeys       string
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Username:      os.Getenv("DASHBOARD_USER"),
		Password:      os.Getenv("DASHBOARD_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Port:          getEnvInt("PORT", 4000),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		PageSize:      getEnvInt("PAGE_SIZE", 1000),
		Env:           getEnv("ENV", "development"),
		APIKeys:       getEnv("API_KEYS", "test"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
