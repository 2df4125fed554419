package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	if err := validateHTTPURL("backend.base_url", cfg.Backend.BaseURL); err != nil {
		return err
	}
	if cfg.Backend.Timeout < 0 {
		return errors.New("backend.timeout must not be negative")
	}
	if cfg.Backend.MaxResponseBytes < 0 {
		return errors.New("backend.max_response_bytes must not be negative")
	}

	sites := map[string]string{
		"views.api":       cfg.Views.API.OnListFailure,
		"views.dashboard": cfg.Views.Dashboard.OnListFailure,
		"views.table":     cfg.Views.Table.OnListFailure,
		"views.detail":    cfg.Views.Detail.OnListFailure,
	}
	for site, policy := range sites {
		switch policy {
		case ListFailureSurface, ListFailureDegrade:
		default:
			return fmt.Errorf("%s.on_list_failure must be %q or %q, got %q", site, ListFailureSurface, ListFailureDegrade, policy)
		}
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	return nil
}

// ValidateStore checks the settings used by the reference backend.
func ValidateStore(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(cfg.Store.Addr) == "" {
		return errors.New("store.addr must be set")
	}
	if strings.TrimSpace(cfg.Store.DBPath) == "" {
		return errors.New("store.db_path must be set")
	}
	return validateHTTPURL("store.classifier_url", cfg.Store.ClassifierURL)
}

func validateHTTPURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q is not a valid URL", field, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be http or https", field)
	}
	return nil
}
