// Package config provides centralized default values for the spin wheel service
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile layers a .env file under the real environment. godotenv never
// overrides variables that are already set.
func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvSecret(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=<set> (default: <unset>)", key)
		}
		return val
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	PublicBaseURL      string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database Configuration
	DBDriver       string // "sqlite3" or "libsql"
	DBPath         string // local sqlite file
	TursoDatabase  string // libsql URL when DBDriver is "libsql"
	TursoAuthToken string

	// Database Pool
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int

	// Auth Configuration
	JWTSecret         string
	TokenLifetime     time.Duration
	SeedAdminUsername string
	SeedAdminEmail    string
	SeedAdminPassword string

	// Email Configuration
	ResendAPIKey  string
	LeadEmailTo   string
	LeadEmailFrom string

	// Observability
	SlowQueryThreshold time.Duration
	SlowRequestAlert   time.Duration
	LogDirectory       string

	// Pagination
	DefaultPageSize int
	MaxPageSize     int
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	PublicBaseURL = getEnvString("PUBLIC_BASE_URL", "http://localhost:8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database Configuration
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBPath = getEnvString("DB_PATH", "spinwheel.db")
	TursoDatabase = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvSecret("TURSO_AUTH_TOKEN", "")

	// Database Pool
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	// Auth Configuration
	JWTSecret = getEnvSecret("JWT_SECRET", "")
	TokenLifetime = getEnvDuration("TOKEN_LIFETIME", 24*time.Hour)
	SeedAdminUsername = getEnvString("SEED_ADMIN_USERNAME", "admin")
	SeedAdminEmail = getEnvString("SEED_ADMIN_EMAIL", "admin@spinwheel.local")
	SeedAdminPassword = getEnvSecret("SEED_ADMIN_PASSWORD", "")

	// Email Configuration
	ResendAPIKey = getEnvSecret("RESEND_API_KEY", "")
	LeadEmailTo = getEnvString("LEAD_EMAIL_TO", "")
	LeadEmailFrom = getEnvString("LEAD_EMAIL_FROM", "noreply@spinwheel.local")

	// Observability
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 50*time.Millisecond)
	SlowRequestAlert = getEnvDuration("SLOW_REQUEST_ALERT", 500*time.Millisecond)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")

	// Pagination
	DefaultPageSize = getEnvInt("DEFAULT_PAGE_SIZE", 10)
	MaxPageSize = getEnvInt("MAX_PAGE_SIZE", 100)
}
