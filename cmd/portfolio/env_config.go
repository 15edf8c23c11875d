package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theamazingmrb/portfolio-sub000/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides deploy-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PORTFOLIO_CONFIG: config file name or path
	ContentDir string // PORTFOLIO_CONTENT_DIR: posts directory
	Addr       string // PORTFOLIO_ADDR: HTTP listen address
	LogLevel   string // PORTFOLIO_LOG_LEVEL: debug, info, warn, error
	SiteURL    string // PORTFOLIO_SITE_URL: public site root for feed links
}

// knownEnvVars lists valid PORTFOLIO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PORTFOLIO_CONFIG":      true,
	"PORTFOLIO_CONTENT_DIR": true,
	"PORTFOLIO_ADDR":        true,
	"PORTFOLIO_LOG_LEVEL":   true,
	"PORTFOLIO_SITE_URL":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("PORTFOLIO_CONFIG"),
		ContentDir: os.Getenv("PORTFOLIO_CONTENT_DIR"),
		Addr:       os.Getenv("PORTFOLIO_ADDR"),
		LogLevel:   os.Getenv("PORTFOLIO_LOG_LEVEL"),
		SiteURL:    os.Getenv("PORTFOLIO_SITE_URL"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized PORTFOLIO_* variables.
// Helps catch typos like PORTFOLIO_CONTENTDIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PORTFOLIO_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment variables on cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via commonFlags.apply)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.SiteURL != "" {
		cfg.Feed.Link = env.SiteURL
	}
}
