package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion      string
	DynamoDBTable  string
	EmailIndexName string
	EventBusName   string

	// CloudWatch metrics namespace; metrics are disabled when empty.
	MetricsNamespace string

	// Logging
	LogLevel string

	// Authentication. API routes are left open when JWTSecret is empty so
	// user creation works before any token exists.
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable:  getEnv("TABLE_NAME", "goal-tracker"),
		EmailIndexName: getEnv("EMAIL_INDEX_NAME", "EmailIndex"),
		EventBusName:   getEnv("EVENT_BUS_NAME", ""),

		MetricsNamespace: getEnv("METRICS_NAMESPACE", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "goal-tracker"),

		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.EmailIndexName == "" {
		return fmt.Errorf("EMAIL_INDEX_NAME is required")
	}
	if c.IsProduction() && c.JWTSecret == "" && getEnvBool("REQUIRE_AUTH", false) {
		return fmt.Errorf("JWT_SECRET is required when REQUIRE_AUTH is set in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthEnabled reports whether bearer-token authentication is configured.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
