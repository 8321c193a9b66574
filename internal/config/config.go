// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv" // For loading .env files
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort   string
	DBPath       string
	JWTSecret    string
	JWTTTL       time.Duration
	AuditLogPath string
}

// LoadConfig loads configuration from environment variables,
// reading a .env file first if one is present.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "banking.db"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-me"
	}
	jwtTTL := 24 * time.Hour
	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttl, err)
		}
		jwtTTL = parsed
	}
	auditPath := os.Getenv("AUDIT_LOG_PATH")
	if auditPath == "" {
		auditPath = "logs.txt"
	}

	return &AppConfig{
		ServerPort:   serverPort,
		DBPath:       dbPath,
		JWTSecret:    jwtSecret,
		JWTTTL:       jwtTTL,
		AuditLogPath: auditPath,
	}, nil
}
