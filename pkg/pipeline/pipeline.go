// Package pipeline provides the core generation pipeline for the scene
// generator.
//
// This package implements the complete filter → sample → place → render
// pipeline shared by the CLI and the HTTP API. Centralizing it keeps the two
// entry points behaving identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Compose: filter the word bank, sample items, place them on the canvas
//  2. Load: fetch every referenced sprite and background concurrently
//  3. Render: serialize the scene in the requested output formats
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(bank, loader, backgrounds, logStore, cache, logger)
//	opts := pipeline.Options{
//	    Mode:      "sentence",
//	    Count:     3,
//	    Phonemes:  []string{"s"},
//	    Positions: []string{"initial", "final"},
//	    Formats:   []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["png"]
package pipeline

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
)

// Default values shared by CLI and API.
const (
	// DefaultGalleryCount is the number of items requested when the caller
	// does not specify one.
	DefaultGalleryCount = 6

	// DefaultSentenceCount is the number of sentence vignettes requested by
	// default.
	DefaultSentenceCount = 3
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one generation request.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scene options
	Mode      string   `json:"mode"`
	Count     int      `json:"count,omitempty"`
	Phonemes  []string `json:"phonemes,omitempty"`
	Clusters  []string `json:"clusters,omitempty"`
	Positions []string `json:"positions,omitempty"`
	Syllables []string `json:"syllables,omitempty"`

	// Seed makes generation reproducible. Zero draws a fresh random seed;
	// the seed actually used is reported in the Result.
	Seed uint64 `json:"seed,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`      // PNG scale, 1.0 = full 300 DPI
	ImageBase string   `json:"image_base,omitempty"` // sprite href base for SVG output

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Mode == "" {
		o.Mode = string(scene.ModeISpy)
	}
	if !scene.ValidMode(scene.Mode(o.Mode)) {
		return errors.New(errors.ErrCodeInvalidMode,
			"unknown mode %q (must be i-spy, actions, mixed, or sentence)", o.Mode)
	}

	if o.Count == 0 {
		if o.Mode == string(scene.ModeSentence) {
			o.Count = DefaultSentenceCount
		} else {
			o.Count = DefaultGalleryCount
		}
	}

	for _, p := range o.Positions {
		if !lexicon.ValidPosition(lexicon.Position(p)) {
			return errors.New(errors.ErrCodeNoSelection,
				"unknown position %q (must be initial, medial, or final)", p)
		}
	}

	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = 1.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// PositionSet converts the raw position strings to the lexicon type.
func (o *Options) PositionSet() []lexicon.Position {
	out := make([]lexicon.Position, 0, len(o.Positions))
	for _, p := range o.Positions {
		out = append(out, lexicon.Position(p))
	}
	return out
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the composed scene that was rendered. Nil when every
	// requested artifact came from the cache.
	Scene *scene.Result

	// Seed is the seed actually used, for reproducing the pass.
	Seed uint64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheHit reports whether all artifacts came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution timings.
type Stats struct {
	ComposeTime time.Duration
	LoadTime    time.Duration
	RenderTime  time.Duration
}
