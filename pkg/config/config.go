package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vaultsafe98-afk/admin-panel/pkg/logger"
)

const (
	DefaultBaseURL      = "https://backend-5f5u.onrender.com/api"
	DefaultTimeout      = 10 * time.Second
	DefaultPageSize     = 20
	DefaultPollInterval = 30 * time.Second
)

type Config struct {
	API         APIConfig         `yaml:"api"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Console     ConsoleConfig     `yaml:"console"`
	Logging     logger.Config     `yaml:"logging"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type CredentialsConfig struct {
	Path string `yaml:"path"`
}

type ConsoleConfig struct {
	PageSize     int           `yaml:"page_size"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Load reads .env (if present), then the yaml config file, then applies
// environment overrides. A missing config file is not an error: the
// console must run with zero setup against the default backend.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := defaults()

	path := os.Getenv("VSADMIN_CONFIG")
	if path == "" {
		path = "./config.yaml"
	}

	configData, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(configData, config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(config)
	fillZeroes(config)
	return config, nil
}

func defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Console: ConsoleConfig{
			PageSize:     DefaultPageSize,
			PollInterval: DefaultPollInterval,
		},
		Logging: logger.Config{
			Level:  "warn",
			Pretty: true,
		},
	}
}

func applyEnv(config *Config) {
	if v := os.Getenv("VSADMIN_API_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("VSADMIN_TOKEN_PATH"); v != "" {
		config.Credentials.Path = v
	}
	if v := os.Getenv("VSADMIN_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

func fillZeroes(config *Config) {
	if config.API.Timeout <= 0 {
		config.API.Timeout = DefaultTimeout
	}
	if config.Console.PageSize <= 0 {
		config.Console.PageSize = DefaultPageSize
	}
	if config.Console.PollInterval <= 0 {
		config.Console.PollInterval = DefaultPollInterval
	}
}

// CredentialsPath resolves the token file location, defaulting to the
// user config dir when nothing was configured.
func (c *Config) CredentialsPath() (string, error) {
	if c.Credentials.Path != "" {
		return c.Credentials.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "vsadmin", "credentials"), nil
}
