package config

import (
	"fmt"
)

// PostgresConfig holds configuration for the order archive database
type PostgresConfig struct {
	User     string
	Password string
	Database string
	Host     string
}

// PostgresEnabled reports whether an order archive database is configured.
// Without POSTGRES_HOSTNAME the server archives orders in memory.
func PostgresEnabled(getenv func(string) string) bool {
	return getenv("POSTGRES_HOSTNAME") != ""
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	config := &PostgresConfig{
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		Host:     getenv("POSTGRES_HOSTNAME"),
	}

	required := []struct {
		key   string
		value string
	}{
		{"POSTGRES_USER", config.User},
		{"POSTGRES_PASSWORD", config.Password},
		{"POSTGRES_DB", config.Database},
		{"POSTGRES_HOSTNAME", config.Host},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%s is required", r.key)
		}
	}

	return config, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Database)
}
