// Package config provides configuration management for the tierlist API.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds settings for the PostgreSQL connection pool.
type DatabaseConfig struct {
	URL      string // Postgres DSN
	PoolSize int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret       string        // Secret key for signing session tokens
	SessionDuration time.Duration // Lifetime of issued session tokens
	AccessKey       string        // Shared secret expected in the x-access-key header
	BcryptCost      int           // Cost factor for password hashing
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port       string // Port for the HTTP server
	Origin     string // Additional allowed CORS origin
	Production bool   // Enables Secure + SameSite=None session cookies
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
}

// getRequiredEnv reads a required environment variable, appending an error
// to the errors slice if it is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration reads an optional environment variable parsed as a
// time.Duration ("30s", "15m", "720h"). Uses defaultValue if not set;
// appends an error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampInt keeps value within [min, max], recording an error when clamping.
func clampInt(value, min, max int, varName string, errors *[]string) int {
	if value < min {
		*errors = append(*errors, fmt.Sprintf("%s (%d) is less than minimum %d, clamping to %d", varName, value, min, min))
		return min
	}
	if value > max {
		*errors = append(*errors, fmt.Sprintf("%s (%d) is greater than maximum %d, clamping to %d", varName, value, max, max))
		return max
	}
	return value
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	databaseURL := getRequiredEnv("DATABASE_URL", &errors)
	poolSize := getOptionalEnvInt("DB_POOL_SIZE", 10, &errors)
	poolSize = clampInt(poolSize, 1, 100, "DB_POOL_SIZE", &errors)

	databaseConfig := &DatabaseConfig{
		URL:      databaseURL,
		PoolSize: poolSize,
	}

	// Auth configuration
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	accessKey := getRequiredEnv("ACCESS_KEY", &errors)
	sessionDuration := getOptionalEnvDuration("SESSION_DURATION", 720*time.Hour, &errors) // 30 days
	bcryptCost := getOptionalEnvInt("BCRYPT_COST", 10, &errors)
	bcryptCost = clampInt(bcryptCost, 4, 31, "BCRYPT_COST", &errors)

	authConfig := &AuthConfig{
		JWTSecret:       jwtSecret,
		SessionDuration: sessionDuration,
		AccessKey:       accessKey,
		BcryptCost:      bcryptCost,
	}

	// Server configuration
	serverConfig := &ServerConfig{
		Port:       getOptionalEnv("PORT", "3000"),
		Origin:     getOptionalEnv("ORIGIN", ""),
		Production: getOptionalEnv("APP_ENV", "development") == "production",
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Database: databaseConfig,
		Auth:     authConfig,
		Server:   serverConfig,
	}, nil
}
