// Package cli implements the scenegen command-line interface.
//
// This package provides commands for generating practice pages, auditing the
// image library, exporting the usage log, and serving the HTTP API. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Build a practice page for a target sound
//   - audit: Report word bank entries with missing or unreadable images
//   - log: Inspect and export the word usage log
//   - cache: Manage the rendered page cache
//   - serve: Run the HTTP API
//   - pick: Interactively choose a target sound and generate
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/serenakung/speech-scene-generator/pkg/assets"
	"github.com/serenakung/speech-scene-generator/pkg/cache"
	"github.com/serenakung/speech-scene-generator/pkg/config"
	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/pipeline"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

// appName is the application name used for directories and display.
const appName = "scenegen"

// app holds the wired dependencies shared by commands. It is built once per
// invocation from the config file.
type app struct {
	cfg    config.Config
	bank   *lexicon.Bank
	loader *assets.Loader
	bgs    []string
	usage  usagelog.Store
}

// newApp loads the config, the word bank, and the background manifest, and
// opens the usage-log backend.
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var bank *lexicon.Bank
	if cfg.Mongo.URI != "" {
		bank, err = lexicon.LoadMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	} else {
		bank, err = lexicon.Load(cfg.Lexicon)
	}
	if err != nil {
		return nil, err
	}

	bgs, err := assets.LoadBackgrounds(cfg.Backgrounds)
	if err != nil {
		return nil, err
	}

	usage, err := newUsageStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		bank:   bank,
		loader: assets.NewLoader(cfg.AssetDir),
		bgs:    bgs,
		usage:  usage,
	}, nil
}

// close releases backend connections.
func (a *app) close() {
	if a.usage != nil {
		_ = a.usage.Close()
	}
}

// newRunner creates a pipeline runner for CLI use.
func (a *app) newRunner(noCache bool) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(a.bank, a.loader, a.bgs, a.usage, c), nil
}

func newUsageStore(ctx context.Context, cfg config.Config) (usagelog.Store, error) {
	if cfg.Log.Backend == config.LogBackendRedis {
		return usagelog.NewRedisStore(ctx, cfg.Log.RedisAddr, cfg.Log.Name)
	}
	return usagelog.NewFileStore(cfg.Log.Dir, cfg.Log.Name)
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/scenegen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
