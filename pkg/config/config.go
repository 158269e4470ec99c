// Package config loads generator settings from a TOML file.
//
// Configuration covers the data inputs (word bank, asset directory,
// background manifest), the usage-log backend, and the optional MongoDB
// lexicon source. Every field has a sensible default so the CLI works with
// no config file at all.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

// Usage-log backend names.
const (
	LogBackendFile  = "file"
	LogBackendRedis = "redis"
)

// Config is the root configuration.
type Config struct {
	// Lexicon is the path to the word bank JSON file.
	Lexicon string `toml:"lexicon"`

	// AssetDir is the directory item image paths resolve against.
	AssetDir string `toml:"asset_dir"`

	// Backgrounds is an optional background manifest path. Empty uses the
	// built-in background list.
	Backgrounds string `toml:"backgrounds"`

	Log   LogConfig   `toml:"log"`
	Mongo MongoConfig `toml:"mongo"`
}

// LogConfig selects and configures the usage-log backend.
type LogConfig struct {
	Backend   string `toml:"backend"`    // "file" (default) or "redis"
	Name      string `toml:"name"`       // log name, default "usage"
	Dir       string `toml:"dir"`        // file backend directory, empty = user config dir
	RedisAddr string `toml:"redis_addr"` // redis backend address
}

// MongoConfig points at an optional MongoDB word bank. When URI is set the
// lexicon loads from Mongo collections instead of the JSON file.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Lexicon:  "wordbank.json",
		AssetDir: "assets",
		Log: LogConfig{
			Backend: LogBackendFile,
			Name:    usagelog.DefaultName,
		},
	}
}

// Load reads the config file at path, applying defaults for unset fields.
// An empty path probes scenegen.toml in the working directory and then the
// user config directory; if neither exists, defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = probe()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeLexiconLoad, err, "reading config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	switch c.Log.Backend {
	case LogBackendFile, LogBackendRedis:
	case "":
		c.Log.Backend = LogBackendFile
	default:
		return errors.New(errors.ErrCodeUnsupported,
			"unknown log backend %q (must be %q or %q)", c.Log.Backend, LogBackendFile, LogBackendRedis)
	}

	if c.Log.Backend == LogBackendRedis && c.Log.RedisAddr == "" {
		return errors.New(errors.ErrCodeUnsupported, "log backend %q requires redis_addr", LogBackendRedis)
	}
	if c.Mongo.URI != "" && c.Mongo.Database == "" {
		return errors.New(errors.ErrCodeUnsupported, "mongo.uri requires mongo.database")
	}
	if c.Log.Name == "" {
		c.Log.Name = usagelog.DefaultName
	}
	return nil
}

// probe looks for scenegen.toml in the conventional locations.
func probe() string {
	if _, err := os.Stat("scenegen.toml"); err == nil {
		return "scenegen.toml"
	}
	if base, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(base, "scenegen", "scenegen.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
