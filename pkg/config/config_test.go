package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("VSADMIN_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("VSADMIN_API_URL", "")
	t.Setenv("VSADMIN_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != DefaultTimeout {
		t.Fatalf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Console.PageSize != DefaultPageSize {
		t.Fatalf("PageSize = %d", cfg.Console.PageSize)
	}
	if cfg.Console.PollInterval != DefaultPollInterval {
		t.Fatalf("PollInterval = %v", cfg.Console.PollInterval)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
api:
  base_url: https://staging.example.com/api
  timeout: 5s
console:
  page_size: 50
logging:
  level: debug
  pretty: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VSADMIN_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "https://staging.example.com/api" {
		t.Fatalf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Console.PageSize != 50 {
		t.Fatalf("PageSize = %d", cfg.Console.PageSize)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Pretty {
		t.Fatalf("logging = %+v", cfg.Logging)
	}

	// Unset fields still get backfilled.
	if cfg.Console.PollInterval != DefaultPollInterval {
		t.Fatalf("PollInterval = %v", cfg.Console.PollInterval)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VSADMIN_CONFIG", path)
	t.Setenv("VSADMIN_API_URL", "https://env.example.com")
	t.Setenv("VSADMIN_LOG_LEVEL", "trace")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Fatalf("env override lost: %q", cfg.API.BaseURL)
	}
	if cfg.Logging.Level != "trace" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VSADMIN_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("malformed yaml must fail loudly, not fall back to defaults")
	}
}

func TestCredentialsPath(t *testing.T) {
	cfg := &Config{}
	cfg.Credentials.Path = "/tmp/custom-token"
	path, err := cfg.CredentialsPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/custom-token" {
		t.Fatalf("configured path ignored: %q", path)
	}

	cfg.Credentials.Path = ""
	path, err = cfg.CredentialsPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "credentials" || filepath.Base(filepath.Dir(path)) != "vsadmin" {
		t.Fatalf("default path = %q", path)
	}
}
