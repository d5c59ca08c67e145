// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", ""),
			Host:           getEnv("MONGODB_HOST", "localhost"),
			Port:           getEnv("MONGODB_PORT", "27017"),
			User:           getEnv("MONGODB_USER", ""),
			Password:       getEnv("MONGODB_PASSWORD", ""),
			Database:       getEnv("MONGODB_DB_NAME", "ecommerce_db"),
			ConnectTimeout: getEnvAsInt("MONGODB_CONNECT_TIMEOUT", 10),
			DataPath:       getEnv("DATA_PATH", "./data"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Environment == "production" && c.Database.URI == "" && c.Database.Password == "" {
		return fmt.Errorf("database credentials are required in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
