// In file: internal/config/config.go

// Package config loads and validates the server's configuration.
//
// Configuration comes from the environment (optionally seeded by a local .env
// file during development) plus an optional YAML tuning file for non-secret
// server settings. The result is an immutable Config value that is built once
// at startup and shared for the lifetime of the process.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the YNAB v1 REST endpoint used when no override is set.
const DefaultBaseURL = "https://api.ynab.com/v1"

// DefaultRequestTimeout bounds every outbound request to the YNAB API.
const DefaultRequestTimeout = 30 * time.Second

// ErrMissingToken reports a missing or empty YNAB access token. Every
// configuration failure in this package wraps it, so boundaries can classify
// the error kind with errors.Is without matching on message text.
var ErrMissingToken = errors.New("YNAB_TOKEN environment variable is required. Please set it to your YNAB personal access token")

// Transport names accepted in the "transport" setting.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all settings for the YNAB MCP server. It is never mutated
// after Load returns.
type Config struct {
	// Token is the YNAB personal access token. Required, secret, env-only.
	Token string
	// BaseURL is the YNAB API endpoint. Defaults to the production v1 API.
	BaseURL string
	// RequestTimeout bounds each individual request to the YNAB API.
	RequestTimeout time.Duration
	// Transport selects how tools are served: "stdio" (MCP over
	// stdin/stdout, the default) or "http".
	Transport string
	// HTTPAddr is the listen address for the HTTP transport, e.g. ":8080".
	HTTPAddr string
}

// fileConfig mirrors the optional YAML tuning file. The token deliberately
// has no place here: secrets stay in the environment.
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	RequestTimeout string `yaml:"request_timeout"`
	Transport      string `yaml:"transport"`
	HTTPAddr       string `yaml:"http_addr"`
}

// Load builds the configuration from the environment and the optional YAML
// file named by YNAB_MCP_CONFIG. Environment variables win over file values.
//
// A local .env file is only consulted outside release mode; in production
// (GIN_MODE="release") configuration is provided directly as environment
// variables by the deployment.
func Load() (*Config, error) {
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &Config{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		Transport:      TransportStdio,
		HTTPAddr:       ":8080",
	}

	if path := os.Getenv("YNAB_MCP_CONFIG"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	token := os.Getenv("YNAB_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}
	cfg.Token = token

	if baseURL := os.Getenv("YNAB_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if transport := os.Getenv("YNAB_MCP_TRANSPORT"); transport != "" {
		cfg.Transport = transport
	}
	if addr := os.Getenv("YNAB_MCP_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return nil, fmt.Errorf("unsupported transport %q: must be %q or %q", cfg.Transport, TransportStdio, TransportHTTP)
	}

	return cfg, nil
}

// applyFile overlays the optional YAML tuning file onto cfg.
func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout in %s: %w", path, err)
		}
		cfg.RequestTimeout = d
	}
	if fc.Transport != "" {
		cfg.Transport = fc.Transport
	}
	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}

	return nil
}
