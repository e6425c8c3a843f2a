package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port    = "8080"
	DataDir = "./data"

	// Store settings
	StoreBackend   = "file" // "file" or "sqlite"
	ContentBlobKey = "portfolio-content"
	SeedFile       = ""

	// Session settings
	SessionSecret = "portfolio-secret"
	SessionName   = "portfolio-session"

	// Demo credentials. Not real authentication.
	AdminUsername = "admin"
	AdminPassword = "password"

	// Artificial delays standing in for network/database latency.
	SimulatedLatency = 500 * time.Millisecond
	LoginDelay       = 1000 * time.Millisecond
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Port = getEnv("PORT", "8080")
	DataDir = getEnv("DATA_DIR", "./data")

	StoreBackend = getEnv("STORE_BACKEND", "file")
	ContentBlobKey = getEnv("CONTENT_BLOB_KEY", "portfolio-content")
	SeedFile = getEnv("SEED_FILE", "")

	SessionSecret = getEnv("SESSION_SECRET", "portfolio-secret")
	SessionName = getEnv("SESSION_NAME", "portfolio-session")

	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "password")

	SimulatedLatency = millisEnv("SIMULATED_LATENCY_MS", 500)
	LoginDelay = millisEnv("LOGIN_DELAY_MS", 1000)
}

func millisEnv(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallback) * time.Millisecond
}
