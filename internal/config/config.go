package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	DynamoDB DynamoDBConfig
	Catalog  CatalogConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DynamoDBConfig holds AWS/DynamoDB connection settings. Endpoint is
// only set for local stacks (dynamodb-local, LocalStack).
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	BidsTable       string
}

// CatalogConfig points at the reference-data service that serves the
// sign catalog, equipment pricing, and county rate tables.
type CatalogConfig struct {
	BaseURL string
	APIKey  string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes
		// from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvWithDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvWithDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvWithDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			BidsTable:       getenvWithDefault("DYNAMODB_BIDS_TABLE", "bids"),
		},
		Catalog: CatalogConfig{
			BaseURL: getenvWithDefault("CATALOG_BASE_URL", "http://localhost:9090"),
			APIKey:  os.Getenv("CATALOG_API_KEY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}
	if c.DynamoDB.Region == "" {
		return errors.New("AWS_REGION must be provided")
	}
	if c.DynamoDB.BidsTable == "" {
		return errors.New("DYNAMODB_BIDS_TABLE must be provided")
	}
	if c.Catalog.BaseURL == "" {
		return errors.New("CATALOG_BASE_URL must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
