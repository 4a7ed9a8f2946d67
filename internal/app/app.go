// Package app wires Breeze together: config, preferences, credentials,
// logging, the OpenWeatherMap client, and the UI loop.
package app

import (
	"context"
	"fmt"

	"github.com/mvanholt/breeze/internal/config"
	"github.com/mvanholt/breeze/internal/creds"
	"github.com/mvanholt/breeze/internal/logging"
	"github.com/mvanholt/breeze/internal/owm"
	"github.com/mvanholt/breeze/internal/prefs"
	"github.com/mvanholt/breeze/internal/ui"
	"github.com/mvanholt/breeze/internal/units"
)

// Options configure the Breeze application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/breeze/config.toml
	PrefsPath  string // empty uses default ~/.config/breeze/prefs.toml
	City       string // overrides the remembered city
}

// Run boots the Breeze TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, flush := logging.New(cfg.LogPath)
	defer flush()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := owm.NewClient(cfg, log)
	if err != nil {
		return fmt.Errorf("init weather client: %w", err)
	}

	city := opts.City
	if city == "" {
		city = userPrefs.LastCity
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log.Infow("starting breeze", "api_base", cfg.APIBase, "units", userPrefs.Units)

	uiOpts := ui.Options{
		Context:     ctx,
		Client:      client,
		Units:       units.Parse(userPrefs.Units),
		APIKeyFunc:  creds.LoadAPIKey,
		PrefsPath:   prefsPath,
		InitialCity: city,
		Log:         log,
	}
	return ui.Run(uiOpts)
}
