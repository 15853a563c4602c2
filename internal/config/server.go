package config

import "time"

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	timeout := 30 * time.Second
	if raw := getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return ServerConfig{
		Port:            port,
		ShutdownTimeout: timeout,
	}
}
