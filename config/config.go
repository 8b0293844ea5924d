package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // sqlite, postgres or mysql
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender   string
	SendGridKey   string
	FrontendDir   string
	ReconcileCron string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBName:    getEnv("DB_NAME", "entropy.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "entropy-productions-secret-key-2024"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:   getEnv("EMAIL_SENDER", "hello@entropyproductions.site"),
		SendGridKey:   getEnv("SENDGRID_API_KEY", ""),
		FrontendDir:   getEnv("FRONTEND_DIR", "./frontend"),
		ReconcileCron: getEnv("RECONCILE_CRON", "@every 10m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "entropy-productions-secret-key-2024" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Welcome emails are disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
