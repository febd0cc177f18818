package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jonathan/resume-studio/internal/cache"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/netclient"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/session"
)

// loadSettings resolves the effective configuration: file values merged with
// defaults, then overridden by flags and environment.
func loadSettings() (config.Config, error) {
	cfg := config.Defaults()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(config.Defaults())
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if verbose {
		cfg.Verbose = true
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger on stderr so command output stays clean on
// stdout.
func newLogger(cfg config.Config) *log.Logger {
	return observability.NewLogger(os.Stderr, cfg.Verbose)
}

// newClient wires the resilient backend client: file-backed session store,
// list cache for offline fallback, and the configured timeout.
func newClient(cfg config.Config, logger *log.Logger) (*netclient.Client, session.Store, error) {
	sessions, err := session.NewFileStore(cfg.SessionPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}

	listCache, err := cache.NewListCache(cfg.CacheDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open list cache: %w", err)
	}

	client := netclient.New(cfg.BaseURL, sessions, netclient.Options{
		Timeout: cfg.Timeout(),
		Logger:  logger,
		Cache:   listCache,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'resume_studio login' to sign in again.")
		},
	})
	return client, sessions, nil
}
