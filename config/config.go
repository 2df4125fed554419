package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// List failure policies. Surface returns the error to the caller; degrade
// renders an empty list instead.
const (
	ListFailureSurface = "surface"
	ListFailureDegrade = "degrade"
)

// Config holds dashboard and reference backend configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Views   ViewsConfig   `yaml:"views"`
	Logging LoggingConfig `yaml:"logging"`
	Store   StoreConfig   `yaml:"store"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"` // e.g. ":3000"
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type BackendConfig struct {
	BaseURL          string        `yaml:"base_url"` // e.g. "http://localhost:8000"
	Timeout          time.Duration `yaml:"timeout"`
	MaxResponseBytes int64         `yaml:"max_response_bytes"`
	WaitReady        time.Duration `yaml:"wait_ready"` // 0 disables the startup health poll
}

// ViewsConfig sets the list failure policy per call site.
type ViewsConfig struct {
	API       ViewConfig `yaml:"api"`
	Dashboard ViewConfig `yaml:"dashboard"`
	Table     ViewConfig `yaml:"table"`
	Detail    ViewConfig `yaml:"detail"`
}

type ViewConfig struct {
	OnListFailure string `yaml:"on_list_failure"` // surface | degrade
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// StoreConfig configures cmd/analysis-backend.
type StoreConfig struct {
	Addr              string        `yaml:"addr"`
	DBPath            string        `yaml:"db_path"`
	ClassifierURL     string        `yaml:"classifier_url"`
	ClassifierTimeout time.Duration `yaml:"classifier_timeout"`
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":3000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}

	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:8000"
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = 30 * time.Second
	}
	if cfg.Backend.MaxResponseBytes == 0 {
		cfg.Backend.MaxResponseBytes = 8 * 1024 * 1024
	}

	if cfg.Views.API.OnListFailure == "" {
		cfg.Views.API.OnListFailure = ListFailureSurface
	}
	if cfg.Views.Dashboard.OnListFailure == "" {
		cfg.Views.Dashboard.OnListFailure = ListFailureDegrade
	}
	if cfg.Views.Table.OnListFailure == "" {
		cfg.Views.Table.OnListFailure = ListFailureDegrade
	}
	if cfg.Views.Detail.OnListFailure == "" {
		cfg.Views.Detail.OnListFailure = ListFailureDegrade
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Store.Addr == "" {
		cfg.Store.Addr = ":8000"
	}
	if cfg.Store.DBPath == "" {
		cfg.Store.DBPath = "text_analysis.db"
	}
	if cfg.Store.ClassifierURL == "" {
		cfg.Store.ClassifierURL = "http://localhost:9000/classify"
	}
	if cfg.Store.ClassifierTimeout == 0 {
		cfg.Store.ClassifierTimeout = 30 * time.Second
	}
}

func applyEnv(cfg *Config) {
	if v := env("TEXTDASH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	// NEXT_PUBLIC_API_URL is honored so existing deployments keep working.
	if v := env("NEXT_PUBLIC_API_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := env("TEXTDASH_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := env("TEXTDASH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := env("TEXTDASH_STORE_ADDR"); v != "" {
		cfg.Store.Addr = v
	}
	if v := env("TEXTDASH_DB_PATH"); v != "" {
		cfg.Store.DBPath = v
	}
	if v := env("TEXTDASH_CLASSIFIER_URL"); v != "" {
		cfg.Store.ClassifierURL = v
	}
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
