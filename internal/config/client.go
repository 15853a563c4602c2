package config

import "strings"

// DefaultBaseURL is where the smoke command and e2e suite expect the server
const DefaultBaseURL = "http://localhost:8080"

// ClientConfig holds settings for callers of a running server
type ClientConfig struct {
	BaseURL  string
	Username string
	Password string
}

// LoadClientConfig reads BASE_URL and optional login overrides
func LoadClientConfig(getenv func(string) string) ClientConfig {
	cfg := ClientConfig{
		BaseURL:  strings.TrimRight(getenv("BASE_URL"), "/"),
		Username: getenv("SAUCE_USERNAME"),
		Password: getenv("SAUCE_PASSWORD"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Username == "" {
		cfg.Username = "standard_user"
	}
	if cfg.Password == "" {
		cfg.Password = "secret_sauce"
	}
	return cfg
}
