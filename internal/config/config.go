package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	StoreURL string // Base URL of the REST backend
	Port     string // Listen port for the mock store
	DataFile string // JSON file backing the mock store
}

// Load reads configuration from the environment, with a .env file if present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		StoreURL: getenv("STORE_URL", "http://localhost:5001"),
		Port:     getenv("PORT", "5001"),
		DataFile: getenv("DATA_FILE", "db.json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
