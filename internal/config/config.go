package config

import (
	"os"
	"strconv"

	"skillsummary/internal/errors"
)

// WritePolicy controls how a failed summary append affects the run.
type WritePolicy string

const (
	// WriteSoft logs the append failure and lets the run finish cleanly.
	WriteSoft WritePolicy = "soft"
	// WriteStrict propagates the append failure and fails the run.
	WriteStrict WritePolicy = "strict"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Scoring  ScoringConfig
	Summary  SummaryConfig
}

// DatabaseConfig holds relational store connection settings
type DatabaseConfig struct {
	URI      string
	User     string
	Password string
	Name     string
	Host     string
	Port     int
}

// ScoringConfig holds key-value score store settings
type ScoringConfig struct {
	TableName string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// SummaryConfig holds summary table settings
type SummaryConfig struct {
	TableName   string
	WritePolicy WritePolicy
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	scoringConfig, err := loadScoringConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scoring configuration")
	}
	config.Scoring = *scoringConfig

	summaryConfig, err := loadSummaryConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load summary configuration")
	}
	config.Summary = *summaryConfig

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	uri := os.Getenv("DATABASE_URI")
	if uri == "" {
		return nil, errors.ConfigInvalid("DATABASE_URI is required")
	}

	return &DatabaseConfig{
		URI:      uri,
		User:     getEnvOrDefault("DB_USER", ""),
		Password: getEnvOrDefault("DB_PASSWORD", ""),
		Name:     getEnvOrDefault("DB_NAME", ""),
		Host:     getEnvOrDefault("DB_HOST", ""),
		Port:     getEnvIntOrDefault("DB_PORT", 5432),
	}, nil
}

func loadScoringConfig() (*ScoringConfig, error) {
	tableName := os.Getenv("SCORING_TABLE_NAME")
	if tableName == "" {
		return nil, errors.ConfigInvalid("SCORING_TABLE_NAME is required")
	}

	return &ScoringConfig{
		TableName: tableName,
		Region:    getEnvOrDefault("AWS_REGION", "us-east-1"),
		AccessKey: getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
		Endpoint:  getEnvOrDefault("DYNAMO_ENDPOINT", ""),
	}, nil
}

func loadSummaryConfig() (*SummaryConfig, error) {
	tableName := os.Getenv("SUMMARY_TABLE_NAME")
	if tableName == "" {
		return nil, errors.ConfigInvalid("SUMMARY_TABLE_NAME is required")
	}

	policy := WritePolicy(getEnvOrDefault("SUMMARY_WRITE_POLICY", string(WriteSoft)))
	if policy != WriteSoft && policy != WriteStrict {
		return nil, errors.ConfigInvalid("SUMMARY_WRITE_POLICY must be 'soft' or 'strict'")
	}

	return &SummaryConfig{
		TableName:   tableName,
		WritePolicy: policy,
	}, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
