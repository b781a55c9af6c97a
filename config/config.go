package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Govind-619/PaymentRecords/utils"
)

// Config holds all configuration for the application
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	Port           string
	Env            string
	LogDir         string
}

// LoadConfig loads configuration from a .env file, when present, and the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", utils.DefaultMaxOpenConns)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", utils.DefaultMaxIdleConns)
	if err != nil {
		return nil, err
	}

	config := &Config{
		DBHost:         getEnvOrDefault("DB_HOST", utils.DefaultDBHost),
		DBPort:         getEnvOrDefault("DB_PORT", utils.DefaultDBPort),
		DBUser:         getEnvOrDefault("DB_USER", utils.DefaultDBUser),
		DBPassword:     getEnvOrDefault("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:         getEnvOrDefault("DB_NAME", utils.DefaultDBName),
		DBSSLMode:      getEnvOrDefault("DB_SSLMODE", utils.DefaultDBSSLMode),
		DBMaxOpenConns: maxOpen,
		DBMaxIdleConns: maxIdle,
		Port:           getEnvOrDefault("PORT", utils.DefaultPort),
		Env:            getEnvOrDefault("ENV", "development"),
		LogDir:         getEnvOrDefault("LOG_DIR", utils.DefaultLogDir),
	}

	return config, nil
}

// DSN returns the postgres connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
