package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Store   StoreConfig
	Extract ExtractConfig
	Daemon  DaemonConfig
}

// StoreConfig holds persistence-related configuration
type StoreConfig struct {
	Path string
}

// ExtractConfig holds extraction pipeline configuration
type ExtractConfig struct {
	ContextWindow int
	TopN          int
	MaxInvoiceLen int
	WeightsPath   string
}

// DaemonConfig holds watcher daemon configuration
type DaemonConfig struct {
	HealthAddr    string
	WatchDebounce time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "invoices.db"),
		},
		Extract: ExtractConfig{
			ContextWindow: getEnvAsInt("EXTRACT_CONTEXT_WINDOW", 5),
			TopN:          getEnvAsInt("EXTRACT_TOP_N", 3),
			MaxInvoiceLen: getEnvAsInt("EXTRACT_MAX_INVOICE_LEN", 7),
			WeightsPath:   getEnv("EXTRACT_WEIGHTS", ""),
		},
		Daemon: DaemonConfig{
			HealthAddr:    getEnv("HEALTH_ADDR", ":8080"),
			WatchDebounce: getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
