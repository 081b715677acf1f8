package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"prepmate/interview/internal/llm"
)

// Config is the explicit process configuration, read once at startup.
// A missing AI credential is an ordinary state here, not an error: the
// service runs with AI features degraded.
type Config struct {
	Port string

	// Postgres connection
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// AI provider
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	AITimeout time.Duration

	JWTSecret string

	QuestionThreshold int

	ExportEnabled  bool
	ExportSchedule string
	ExportDir      string

	CORSOrigins []string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	provider := getEnvOrDefault("AI_PROVIDER", "groq")

	config := &Config{
		Port: getEnvOrDefault("PORT", "8080"),

		DBHost:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
		DBUser:     getEnvOrDefault("POSTGRES_USER", "postgres"),
		DBPassword: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		DBName:     getEnvOrDefault("POSTGRES_DB", "postgres"),
		DBPort:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		DBSSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),

		Provider:  provider,
		APIKey:    os.Getenv(apiKeyEnv(provider)),
		Model:     os.Getenv("AI_MODEL"),
		BaseURL:   os.Getenv("AI_BASE_URL"),
		AITimeout: getEnvDuration("AI_TIMEOUT", 30*time.Second),

		JWTSecret: getEnvOrDefault("JWT_SECRET", "dev"),

		QuestionThreshold: getEnvInt("QUESTION_THRESHOLD", 5),

		ExportEnabled:  getEnvOrDefault("REPORT_EXPORT_ENABLED", "false") == "true",
		ExportSchedule: getEnvOrDefault("REPORT_EXPORT_SCHEDULE", "0 2 * * *"),
		ExportDir:      getEnvOrDefault("REPORT_EXPORT_DIR", "./exports"),

		CORSOrigins: []string{getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173")},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "groq" && config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: groq, gemini")
	}
	if config.QuestionThreshold <= 0 {
		return fmt.Errorf("question threshold must be positive, got %d", config.QuestionThreshold)
	}
	return nil
}

// ProviderSettings builds the credential bundle handed to the LLM provider
// factory. Credentials never leave this object once loaded.
func (c *Config) ProviderSettings() llm.Settings {
	return llm.Settings{
		APIKey:  c.APIKey,
		Model:   c.Model,
		BaseURL: c.BaseURL,
	}
}

// AIConfigured reports whether an outbound AI call can be attempted at all.
func (c *Config) AIConfigured() bool {
	return c.APIKey != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func apiKeyEnv(provider string) string {
	if provider == "gemini" {
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
