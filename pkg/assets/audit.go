package assets

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
)

// ReasonNoPath is the fixed reason reported for items without an image path.
const ReasonNoPath = "no image path given"

// MissingAsset describes one word-bank entry with no usable image.
type MissingAsset struct {
	Kind   lexicon.Kind `json:"kind"`
	Word   string       `json:"word"`
	Reason string       `json:"reason"`
}

// Report enumerates every lexical item whose image is absent or unreachable.
type Report struct {
	Missing []MissingAsset `json:"missing"`
}

// Audit checks every item in the bank against the asset directory. Items
// without a path are reported with the fixed ReasonNoPath; items whose image
// fails to load carry the load failure detail. Loads run concurrently with
// the same bounded parallelism as batch loading.
func (l *Loader) Audit(ctx context.Context, bank *lexicon.Bank) *Report {
	var (
		mu      sync.Mutex
		missing []MissingAsset
	)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, kind := range []lexicon.Kind{lexicon.KindNoun, lexicon.KindVerb} {
		for _, it := range bank.ByKind(kind) {
			if it.Image == "" {
				mu.Lock()
				missing = append(missing, MissingAsset{Kind: kind, Word: it.Word, Reason: ReasonNoPath})
				mu.Unlock()
				continue
			}
			g.Go(func() error {
				if _, err := l.Load(it.Image); err != nil {
					mu.Lock()
					missing = append(missing, MissingAsset{
						Kind:   kind,
						Word:   it.Word,
						Reason: err.Error(),
					})
					mu.Unlock()
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	// Concurrency scrambles arrival order; sort for stable reports.
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Kind != missing[j].Kind {
			return missing[i].Kind < missing[j].Kind
		}
		return missing[i].Word < missing[j].Word
	})

	return &Report{Missing: missing}
}
