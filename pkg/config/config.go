package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings, loaded once at startup.
type Config struct {
	Port            string
	Env             string
	BaseURL         string
	UploadDir       string
	JWTSecret       string
	JWTExpiry       time.Duration
	PostgresConnStr string
	MongoURI        string
	MongoDatabase   string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTExpiry:       time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 168)) * time.Hour,
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "bloghub"),
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
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
