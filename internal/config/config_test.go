package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("NEVENT_API_KEY", "")

	_, err := Load("")
	if err == nil {
		t.Fatal("Expected error when no API key is configured")
	}
}

func TestLoad_DefaultsAndEnvKey(t *testing.T) {
	t.Setenv("NEVENT_API_KEY", "secret-token")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.API.URL != "https://api.nevent.io" {
		t.Errorf("Expected default API URL, got %q", cfg.API.URL)
	}
	if cfg.API.Key != "secret-token" {
		t.Errorf("Expected key from env, got %q", cfg.API.Key)
	}
	if cfg.API.TenantID != "" {
		t.Errorf("Expected no default tenant, got %q", cfg.API.TenantID)
	}
	if cfg.Server.Name != "Nevent-MCP" {
		t.Errorf("Expected default server name, got %q", cfg.Server.Name)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEVENT_API_KEY", "secret-token")
	t.Setenv("NEVENT_API_URL", "https://staging.nevent.io")
	t.Setenv("NEVENT_TENANT_ID", "acme")
	t.Setenv("NEVENT_MCP_PORT", "9999")
	t.Setenv("NEVENT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.API.URL != "https://staging.nevent.io" {
		t.Errorf("Expected env URL override, got %q", cfg.API.URL)
	}
	if cfg.API.TenantID != "acme" {
		t.Errorf("Expected tenant override, got %q", cfg.API.TenantID)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Expected port override, got %q", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level override, got %q", cfg.Logging.Level)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	t.Setenv("NEVENT_API_KEY", "")
	t.Setenv("NEVENT_API_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nevent-mcp.toml")
	content := `
[server]
name = "My-Nevent"
port = "5000"

[api]
url = "https://api.example.com/"
key = "file-token"
tenant_id = "tenant-7"

[logging]
level = "warn"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.API.Key != "file-token" {
		t.Errorf("Expected key from file, got %q", cfg.API.Key)
	}
	if cfg.API.URL != "https://api.example.com/" {
		t.Errorf("Expected URL from file, got %q", cfg.API.URL)
	}
	if cfg.Server.Name != "My-Nevent" {
		t.Errorf("Expected server name from file, got %q", cfg.Server.Name)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level from file, got %q", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("NEVENT_API_KEY", "secret-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Missing config file should not be an error: %v", err)
	}
	if cfg.API.URL != "https://api.nevent.io" {
		t.Errorf("Expected defaults, got %q", cfg.API.URL)
	}
}
