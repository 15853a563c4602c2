package config

import (
	"strings"
	"testing"
	"time"
)

// envMap adapts a map to the getenv signature
func envMap(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestLoadServerConfig(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantPort    string
		wantTimeout time.Duration
	}{
		{
			name:        "defaults",
			env:         map[string]string{},
			wantPort:    "8080",
			wantTimeout: 30 * time.Second,
		},
		{
			name:        "overrides",
			env:         map[string]string{"PORT": "9090", "SHUTDOWN_TIMEOUT": "5s"},
			wantPort:    "9090",
			wantTimeout: 5 * time.Second,
		},
		{
			name:        "invalid timeout falls back",
			env:         map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			wantPort:    "8080",
			wantTimeout: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadServerConfig(envMap(tt.env))
			if cfg.Port != tt.wantPort {
				t.Errorf("expected port %s, got %s", tt.wantPort, cfg.Port)
			}
			if cfg.ShutdownTimeout != tt.wantTimeout {
				t.Errorf("expected timeout %v, got %v", tt.wantTimeout, cfg.ShutdownTimeout)
			}
		})
	}
}

func TestLoadPostgresConfig(t *testing.T) {
	full := map[string]string{
		"POSTGRES_USER":     "user",
		"POSTGRES_PASSWORD": "pass",
		"POSTGRES_DB":       "shop",
		"POSTGRES_HOSTNAME": "db",
	}

	cfg, err := LoadPostgresConfig(envMap(full))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "host=db user=user password=pass dbname=shop sslmode=disable"
	if cfg.ConnectionString() != want {
		t.Errorf("expected %q, got %q", want, cfg.ConnectionString())
	}

	for key := range full {
		t.Run("missing "+key, func(t *testing.T) {
			env := make(map[string]string)
			for k, v := range full {
				env[k] = v
			}
			delete(env, key)

			_, err := LoadPostgresConfig(envMap(env))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("expected error to name %s, got %v", key, err)
			}
		})
	}
}

func TestPostgresEnabled(t *testing.T) {
	if PostgresEnabled(envMap(nil)) {
		t.Error("expected disabled without POSTGRES_HOSTNAME")
	}
	if !PostgresEnabled(envMap(map[string]string{"POSTGRES_HOSTNAME": "db"})) {
		t.Error("expected enabled with POSTGRES_HOSTNAME")
	}
}

func TestLoadClientConfig(t *testing.T) {
	cfg := LoadClientConfig(envMap(nil))
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base url, got %s", cfg.BaseURL)
	}
	if cfg.Username != "standard_user" || cfg.Password != "secret_sauce" {
		t.Errorf("unexpected default credentials %+v", cfg)
	}

	cfg = LoadClientConfig(envMap(map[string]string{
		"BASE_URL":       "http://shop.test:9000/",
		"SAUCE_USERNAME": "locked_out_user",
	}))
	if cfg.BaseURL != "http://shop.test:9000" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.BaseURL)
	}
	if cfg.Username != "locked_out_user" {
		t.Errorf("expected username override, got %s", cfg.Username)
	}
}
