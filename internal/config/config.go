package config

import (
	"os"
	"strconv"
)

type Config struct {
	Store    StoreConfig
	Admin    AdminConfig
	LogDir   string
	Capacity int
}

type StoreConfig struct {
	// Backend is "file" (one JSON snapshot per slot) or "sqlite" (one
	// snapshots table, multi-slot saves are transactional).
	Backend    string
	DataDir    string
	SQLitePath string
}

type AdminConfig struct {
	Username string
	Password string
}

func Load() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:    getEnv("STORE_BACKEND", "file"),
			DataDir:    getEnv("DATA_DIR", "data"),
			SQLitePath: getEnv("SQLITE_PATH", "data/bookings.db"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		LogDir:   getEnv("LOG_DIR", "logs"),
		Capacity: getEnvInt("DAILY_CAPACITY", 10000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
