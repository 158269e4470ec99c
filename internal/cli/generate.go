package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/serenakung/speech-scene-generator/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	mode      string   // page mode: i-spy, actions, mixed, sentence
	count     int      // items or sentence slots to request
	phonemes  []string // target phoneme tags
	clusters  []string // target cluster spellings
	positions []string // word positions: initial, medial, final
	syllables []string // syllable buckets: 1, 2, 3, 4plus
	seed      uint64   // reproducible seed; 0 draws one
	output    string   // output file (single format) or base path
	scale     float64  // PNG scale factor
	imageBase string   // sprite href base for SVG output
	noCache   bool     // disable the artifact cache entirely
	refresh   bool     // regenerate even on a cache hit
}

// newGenerateCmd creates the generate command for building practice pages.
//
// Default settings:
//   - mode: i-spy
//   - count: 6 items (3 sentences in sentence mode)
//   - format: png at full 300 DPI scale
func newGenerateCmd(configPath *string) *cobra.Command {
	var formatsStr string
	opts := generateOpts{scale: 1.0}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a practice page for a target sound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), *configPath, parseFormats(formatsStr), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "i-spy", "page mode: i-spy, actions, mixed, sentence")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "items (gallery) or sentences to request")
	cmd.Flags().StringSliceVarP(&opts.phonemes, "phoneme", "p", nil, "target phoneme tag (repeatable)")
	cmd.Flags().StringSliceVar(&opts.clusters, "cluster", nil, "target cluster spelling (repeatable)")
	cmd.Flags().StringSliceVar(&opts.positions, "position", nil, "word position: initial, medial, final (repeatable)")
	cmd.Flags().StringSliceVar(&opts.syllables, "syllables", nil, "syllable bucket: 1, 2, 3, 4plus (repeatable)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 draws one)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor (1.0 = 300 DPI)")
	cmd.Flags().StringVar(&opts.imageBase, "image-base", "", "base path prefix for image hrefs in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered page cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if a cached page exists")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}

// runGenerate executes the pipeline and writes one file per format.
func runGenerate(ctx context.Context, configPath string, formats []string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.close()

	runner, err := a.newRunner(opts.noCache)
	if err != nil {
		return err
	}

	spin := newSpinnerWithContext(ctx, "Composing page...")
	spin.Start()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Mode:      opts.mode,
		Count:     opts.count,
		Phonemes:  opts.phonemes,
		Clusters:  opts.clusters,
		Positions: opts.positions,
		Syllables: opts.syllables,
		Seed:      opts.seed,
		Formats:   formats,
		Scale:     opts.scale,
		ImageBase: opts.imageBase,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	if err != nil {
		spin.Stop()
		return err
	}
	spin.Stop()
	prog.done("Page generated")

	for _, format := range formats {
		path := outputPath(opts.output, format, len(formats) > 1)
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		printFile(path)
	}

	if res.Scene != nil {
		printPageStats(res.Scene.Stats.Placed, res.Scene.Stats.Dropped, false)
	} else {
		printPageStats(0, 0, res.CacheHit)
	}
	printDetail("Seed: %d (pass --seed %d to reproduce)", res.Seed, res.Seed)
	return nil
}

// outputPath derives the file path for one format. With multiple formats the
// output flag acts as a base path and the format extension is appended.
func outputPath(output, format string, multi bool) string {
	if output == "" {
		return "scene." + format
	}
	if !multi {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "." + format
}
