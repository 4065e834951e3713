// Package bootstrap wires settings, preferences, the engine and the history
// store shared by the terminal and window front-ends.
package bootstrap

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/history"
	"github.com/ytget/tubedl/internal/logger"
	"github.com/ytget/tubedl/internal/ytdlp"
)

// Env holds what both front-ends read at startup
type Env struct {
	Settings *config.Settings
	Prefs    *config.PreferenceStore
}

// Load reads settings from configPath (empty for the default location) and
// initializes logging. debug forces the debug level.
func Load(configPath string, debug bool) (*Env, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	level := settings.Log.Level
	if debug {
		level = "debug"
	}
	logger.Init(level)

	log.Debug().Str("op", "bootstrap/load").
		Str("prefs", settings.PreferencesFile).
		Str("history", settings.HistoryDB).
		Str("ytdlp", settings.YtDlpPath).
		Msg("Settings loaded")

	return &Env{
		Settings: settings,
		Prefs:    config.NewPreferenceStore(settings.PreferencesFile),
	}, nil
}

// Policy returns the input requirements configured in the settings
func (e *Env) Policy() download.Policy {
	return download.Policy{
		RequireCookies: e.Settings.RequireCookies,
		RequireFFmpeg:  e.Settings.RequireFFmpeg,
	}
}

// OpenHistory opens the history database named in the settings
func (e *Env) OpenHistory() (*history.Store, error) {
	return history.Open(e.Settings.HistoryDB)
}

// NewService builds a download service reporting to display. The returned
// function releases the history store and must be called when done.
func (e *Env) NewService(display download.Display) (*download.Service, func()) {
	cfg := download.ServiceConfig{
		MergeFormat: e.Settings.MergeFormat,
		Policy:      e.Policy(),
	}

	closeFn := func() {}
	store, err := e.OpenHistory()
	if err != nil {
		log.Warn().Str("op", "bootstrap/service").Err(err).Msg("History disabled")
	} else {
		cfg.Recorder = store
		closeFn = func() {
			if err := store.Close(); err != nil {
				log.Warn().Str("op", "bootstrap/service").Err(err).Msg("Failed to close history")
			}
		}
	}

	return download.NewService(ytdlp.New(e.Settings.YtDlpPath), display, cfg), closeFn
}
