package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Contact  ContactConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

// DatabaseConfig points at the MongoDB deployment backing the document
// collections. An empty URL means the service runs without a store:
// listings come back empty and writes answer 503.
type DatabaseConfig struct {
	URL  string
	Name string
}

type RedisConfig struct {
	Addr         string
	ListCacheTTL time.Duration
}

type ContactConfig struct {
	RateRPS   float64
	RateBurst int
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Name: getEnv("DATABASE_NAME", "portfolio"),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", ""),
			ListCacheTTL: time.Duration(getEnvAsInt("LIST_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Contact: ContactConfig{
			RateRPS:   getEnvAsFloat("CONTACT_RATE_RPS", 1),
			RateBurst: getEnvAsInt("CONTACT_RATE_BURST", 5),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.URL != "" && c.Database.Name == "" {
		return fmt.Errorf("DATABASE_NAME is required when DATABASE_URL is set")
	}

	if c.Contact.RateBurst < 1 {
		return fmt.Errorf("CONTACT_RATE_BURST must be at least 1")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}
