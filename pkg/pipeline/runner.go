package pipeline

import (
	"context"
	"encoding/json"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/serenakung/speech-scene-generator/pkg/assets"
	"github.com/serenakung/speech-scene-generator/pkg/cache"
	"github.com/serenakung/speech-scene-generator/pkg/errors"
	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/observability"
	"github.com/serenakung/speech-scene-generator/pkg/render"
	"github.com/serenakung/speech-scene-generator/pkg/render/sink"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
	"github.com/serenakung/speech-scene-generator/pkg/scene/filter"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

// artifactTTL bounds how long rendered pages live in the cache. Pages are
// cheap to regenerate, so entries are kept for a week at most.
const artifactTTL = 7 * 24 * time.Hour

// Runner executes generation passes against a fixed word bank. It holds the
// slow-moving dependencies (assets, cache, usage log) so callers only supply
// per-request Options.
type Runner struct {
	bank        *lexicon.Bank
	backgrounds []string
	loader      *assets.Loader
	usage       usagelog.Store
	cache       cache.Cache
	keyer       cache.Keyer
	bankHash    string
}

// NewRunner creates a Runner. The usage store and cache may be nil, in which
// case logging and caching are skipped.
func NewRunner(bank *lexicon.Bank, loader *assets.Loader, backgrounds []string, usage usagelog.Store, c cache.Cache) *Runner {
	raw, _ := json.Marshal(bank)
	return &Runner{
		bank:        bank,
		backgrounds: backgrounds,
		loader:      loader,
		usage:       usage,
		cache:       c,
		keyer:       cache.NewDefaultKeyer(),
		bankHash:    cache.Hash(raw),
	}
}

// Execute runs the full pipeline for one request.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	criteria := filter.New(opts.Phonemes, opts.Clusters, opts.PositionSet(), opts.Syllables)

	// An explicit seed makes the pass deterministic, so cached artifacts
	// are valid. Random seeds never hit.
	if hit := r.fromCache(ctx, opts, criteria); hit != nil {
		logger.Debug("artifact cache hit", "seed", opts.Seed, "formats", opts.Formats)
		return hit, nil
	}

	composeStart := time.Now()
	observability.Pipeline().OnComposeStart(ctx, opts.Mode, opts.Count)
	session := scene.NewSession(r.bank, r.backgrounds, opts.Seed)
	res, err := session.Generate(criteria, scene.Mode(opts.Mode), scene.Options{Count: opts.Count})
	composeTime := time.Since(composeStart)
	if err != nil {
		observability.Pipeline().OnComposeComplete(ctx, opts.Mode, 0, composeTime, err)
		return nil, err
	}
	observability.Pipeline().OnComposeComplete(ctx, opts.Mode, res.Stats.Placed, composeTime, nil)
	logger.Debug("scene composed",
		"mode", res.Mode,
		"placed", res.Stats.Placed,
		"dropped", res.Stats.Dropped,
		"duration", composeTime)

	loadStart := time.Now()
	sprites, background := r.loadImages(ctx, res)
	loadTime := time.Since(loadStart)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.renderAll(res, opts, sprites, background)
	renderTime := time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, renderTime, err)
	if err != nil {
		return nil, err
	}

	r.storeCache(ctx, opts, criteria, artifacts, logger)
	r.logUsage(ctx, res, logger)

	return &Result{
		Scene:     res,
		Seed:      opts.Seed,
		Artifacts: artifacts,
		Stats: Stats{
			ComposeTime: composeTime,
			LoadTime:    loadTime,
			RenderTime:  renderTime,
		},
	}, nil
}

// loadImages fetches every sprite the scene references plus its background.
// Missing images degrade to placeholders, so failures are not fatal.
func (r *Runner) loadImages(ctx context.Context, res *scene.Result) (map[string]image.Image, image.Image) {
	if r.loader == nil {
		return nil, nil
	}

	var paths []string
	for _, it := range res.Items {
		if it.Image != "" {
			paths = append(paths, it.Image)
		}
	}
	for _, g := range res.Groups {
		if g.Verb.Image != "" {
			paths = append(paths, g.Verb.Image)
		}
		if g.Object.Image != "" {
			paths = append(paths, g.Object.Image)
		}
	}
	sprites := r.loader.LoadBatch(ctx, paths)

	var background image.Image
	if res.Background != "" {
		bg, err := r.loader.Load(res.Background)
		if err == nil {
			background = bg
		}
	}
	return sprites, background
}

// renderAll serializes the scene in every requested format.
func (r *Runner) renderAll(res *scene.Result, opts Options, sprites map[string]image.Image, background image.Image) (map[string][]byte, error) {
	drawOpts := []render.Option{
		render.WithSprites(sprites),
		render.WithBackground(background),
	}
	svgOpts := []sink.SVGOption{}
	if opts.ImageBase != "" {
		svgOpts = append(svgOpts, sink.WithImageBase(opts.ImageBase))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatPNG:
			data, err = sink.RenderPNG(res,
				sink.WithPNGDrawOptions(drawOpts...),
				sink.WithPNGScale(opts.Scale))
		case FormatSVG:
			data = sink.RenderSVG(res, svgOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(res, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(res)
		default:
			err = errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// fromCache returns a Result assembled entirely from cached artifacts, or nil
// when any requested format misses.
func (r *Runner) fromCache(ctx context.Context, opts Options, criteria filter.Criteria) *Result {
	if r.cache == nil || opts.Refresh {
		return nil
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.keyer.ArtifactKey(r.bankHash, r.keyOpts(opts, criteria, format))
		data, found, err := r.cache.Get(ctx, key)
		if err != nil || !found {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			return nil
		}
		observability.Cache().OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	return &Result{
		Seed:      opts.Seed,
		Artifacts: artifacts,
		CacheHit:  true,
	}
}

func (r *Runner) storeCache(ctx context.Context, opts Options, criteria filter.Criteria, artifacts map[string][]byte, logger *log.Logger) {
	if r.cache == nil {
		return
	}
	for format, data := range artifacts {
		key := r.keyer.ArtifactKey(r.bankHash, r.keyOpts(opts, criteria, format))
		if err := r.cache.Set(ctx, key, data, artifactTTL); err != nil {
			logger.Warn("artifact cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
}

func (r *Runner) keyOpts(opts Options, criteria filter.Criteria, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Mode:     opts.Mode,
		Count:    opts.Count,
		Seed:     opts.Seed,
		Format:   format,
		Criteria: criteria.Summary(),
	}
}

// logUsage appends one record per rendered word. Logging failures are
// reported but never fail the pass.
func (r *Runner) logUsage(ctx context.Context, res *scene.Result, logger *log.Logger) {
	if r.usage == nil {
		return
	}
	var recs []usagelog.Record
	for _, it := range res.Items {
		rec := usagelog.NewRecord(string(res.Mode), "", "")
		if it.Kind == lexicon.KindVerb {
			rec.Verb = it.Word
		} else {
			rec.Noun = it.Word
		}
		recs = append(recs, rec)
	}
	for _, g := range res.Groups {
		rec := usagelog.NewRecord(string(res.Mode), g.Verb.Word, g.Object.Word)
		recs = append(recs, rec)
	}
	for _, rec := range recs {
		if err := r.usage.Append(ctx, rec); err != nil {
			logger.Warn("usage log write failed", "error", err)
			return
		}
	}
}
