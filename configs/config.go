package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Driver           string
	ConnectionString string
	SQLitePath       string
	Seed             bool
}

type ReceiptConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
	RecipientEmail     string
}

// Enabled reports whether order receipts should be emailed.
func (c ReceiptConfig) Enabled() bool {
	return c.SenderEmail != "" && c.RecipientEmail != ""
}

type Config struct {
	Port     string
	Env      string
	Database DatabaseConfig
	Receipt  ReceiptConfig
}

func Load() Config {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Port:     getEnvOrDefault("PORT", "8080"),
		Env:      getEnvOrDefault("APP_ENV", "development"),
		Database: LoadDatabaseConfig(),
		Receipt:  LoadReceiptConfig(),
	}
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:           getEnvOrDefault("DB_DRIVER", "postgres"),
		ConnectionString: getEnvOrDefault("CORNER_STORE_DB_CONNECTION_STRING", postgresDSNFromParts()),
		SQLitePath:       getEnvOrDefault("SQLITE_PATH", "cornerstore.db"),
		Seed:             getBoolOrDefault("DB_SEED", true),
	}
}

func LoadReceiptConfig() ReceiptConfig {
	return ReceiptConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("RECEIPT_SENDER_EMAIL"),
		RecipientEmail:     os.Getenv("RECEIPT_RECIPIENT_EMAIL"),
	}
}

func postgresDSNFromParts() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnvOrDefault("POSTGRES_HOST", "localhost"),
		getEnvOrDefault("POSTGRES_USER", "test"),
		getEnvOrDefault("POSTGRES_PASSWORD", "test"),
		getEnvOrDefault("POSTGRES_DB", "cornerstore"),
		getEnvOrDefault("DB_PORT", "5432"),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
