package scene

import (
	"fmt"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene/filter"
	"github.com/serenakung/speech-scene-generator/pkg/scene/place"
	"github.com/serenakung/speech-scene-generator/pkg/scene/sample"
)

// Options configures one generation pass.
type Options struct {
	// Count is the number of items (gallery) or sentences (sentence mode)
	// to request. Sentence mode accepts 1 through 6.
	Count int
}

// Generate runs one generation pass: filter the bank, sample items, place
// them on the canvas, and return the composed scene. Items or groups that
// find no spot are dropped silently; only a pass that places nothing at all
// fails, with a NOTHING_PLACED error.
func (s *Session) Generate(criteria filter.Criteria, mode Mode, opts Options) (*Result, error) {
	if !ValidMode(mode) {
		return nil, errors.New(errors.ErrCodeInvalidMode,
			"unknown mode %q (must be i-spy, actions, mixed, or sentence)", mode)
	}
	if !criteria.HasSelection() {
		return nil, errors.New(errors.ErrCodeNoSelection,
			"no word position selected; pick at least one of initial, medial, final")
	}

	if mode == ModeSentence {
		return s.generateSentences(criteria, opts)
	}
	return s.generateGallery(criteria, mode, opts)
}

// generateGallery composes the i-spy, actions, and mixed layouts. The three
// differ only in which pools feed the sampler and in the per-kind size range.
func (s *Session) generateGallery(criteria filter.Criteria, mode Mode, opts Options) (*Result, error) {
	if opts.Count <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidCount, "item count must be positive, got %d", opts.Count)
	}

	nounPool := filter.Apply(s.Bank.Nouns, criteria)
	verbPool := filter.Apply(s.Bank.Verbs, criteria)

	if err := checkPools(mode, criteria, nounPool, verbPool); err != nil {
		return nil, err
	}

	var picked []Item
	switch mode {
	case ModeISpy:
		for _, it := range sample.Take(s.rng, nounPool, opts.Count) {
			picked = append(picked, Item{Item: it, Kind: lexicon.KindNoun})
		}
	case ModeActions:
		for _, it := range sample.Take(s.rng, verbPool, opts.Count) {
			picked = append(picked, Item{Item: it, Kind: lexicon.KindVerb})
		}
	case ModeMixed:
		nNouns, nVerbs := sample.Split(opts.Count)
		for _, it := range sample.Take(s.rng, nounPool, nNouns) {
			picked = append(picked, Item{Item: it, Kind: lexicon.KindNoun})
		}
		for _, it := range sample.Take(s.rng, verbPool, nVerbs) {
			picked = append(picked, Item{Item: it, Kind: lexicon.KindVerb})
		}
	}

	placer := place.Placer{
		CanvasW:  place.CanvasWidth,
		CanvasH:  place.CanvasHeight,
		Margin:   galleryMargin,
		Pad:      galleryPad,
		MaxTries: galleryMaxTries,
	}

	res := &Result{
		ID:   newID(),
		Mode: mode,
		Stats: Stats{
			NounPool: len(nounPool),
			VerbPool: len(verbPool),
			Sampled:  len(picked),
		},
	}

	var occupied []place.Rect
	for _, it := range picked {
		w, h := s.itemSize(it.Kind)
		box, ok := placer.FindSpot(s.rng, w, h, occupied)
		if !ok {
			// No resize retry: the item is simply dropped from the output.
			res.Stats.Dropped++
			continue
		}
		it.Box = box
		occupied = append(occupied, box)
		res.Items = append(res.Items, it)
		res.Targets = append(res.Targets, it.Word)
	}
	res.Stats.Placed = len(res.Items)

	if len(res.Items) == 0 {
		return nil, errors.New(errors.ErrCodeNothingPlaced,
			"could not fit anything on the canvas (%d items tried, %s)",
			res.Stats.Sampled, criteria.Summary())
	}
	return res, nil
}

// checkPools aborts generation before any placement when a required pool is
// empty, naming the lexical class (or both) along with the filter summary.
func checkPools(mode Mode, criteria filter.Criteria, nouns, verbs []lexicon.Item) error {
	needNouns := mode == ModeISpy || mode == ModeMixed
	needVerbs := mode == ModeActions || mode == ModeMixed

	missingNouns := needNouns && len(nouns) == 0
	missingVerbs := needVerbs && len(verbs) == 0

	switch {
	case missingNouns && missingVerbs:
		return errors.New(errors.ErrCodeEmptyPool,
			"no matching NOUNS and VERBS for %s", criteria.Summary())
	case missingNouns:
		return errors.New(errors.ErrCodeEmptyPool,
			"no matching NOUNS for %s", criteria.Summary())
	case missingVerbs:
		return errors.New(errors.ErrCodeEmptyPool,
			"no matching VERBS for %s", criteria.Summary())
	}
	return nil
}

// itemSize draws a uniform size from the kind-dependent range.
func (s *Session) itemSize(kind lexicon.Kind) (w, h int) {
	if kind == lexicon.KindVerb {
		return verbMinW + s.rng.IntN(verbMaxW-verbMinW+1),
			verbMinH + s.rng.IntN(verbMaxH-verbMinH+1)
	}
	return nounMinW + s.rng.IntN(nounMaxW-nounMinW+1),
		nounMinH + s.rng.IntN(nounMaxH-nounMinH+1)
}

// Sentence layout tiers, selected by the requested sentence count. Fewer
// sentences get larger cells; gaps scale down with the cells.
type sentenceTier struct {
	cell int // square cell edge in pixels
	gap  int // horizontal gap between cells
}

func tierFor(count int) sentenceTier {
	switch {
	case count <= 2:
		return sentenceTier{cell: 520, gap: 48}
	case count <= 4:
		return sentenceTier{cell: 420, gap: 36}
	default:
		return sentenceTier{cell: 320, gap: 24}
	}
}

// generateSentences composes person-verb-object vignettes. Each sentence
// slot picks a verb, resolves an object via the suggestion table (falling
// back to the generic noun pool), and is placed as one atomic bounding box.
// A slot with no qualifying object, or a group that finds no spot, is
// dropped whole.
func (s *Session) generateSentences(criteria filter.Criteria, opts Options) (*Result, error) {
	if opts.Count < MinSentences || opts.Count > MaxSentences {
		return nil, errors.New(errors.ErrCodeInvalidCount,
			"sentence count must be between %d and %d, got %d", MinSentences, MaxSentences, opts.Count)
	}

	nounPool := filter.Apply(s.Bank.Nouns, criteria)
	verbPool := filter.Apply(s.Bank.Verbs, criteria)
	if len(verbPool) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyPool,
			"no matching VERBS for %s", criteria.Summary())
	}

	tier := tierFor(opts.Count)
	groupW := 3*tier.cell + 2*tier.gap
	groupH := tier.cell

	placer := place.Placer{
		CanvasW:  place.CanvasWidth,
		CanvasH:  place.CanvasHeight,
		Margin:   sentenceMargin,
		Pad:      sentencePad,
		MaxTries: sentenceMaxTries,
	}

	res := &Result{
		ID:   newID(),
		Mode: ModeSentence,
		Stats: Stats{
			NounPool: len(nounPool),
			VerbPool: len(verbPool),
		},
	}
	if bg, ok := sample.One(s.rng, s.Backgrounds); ok {
		res.Background = bg
	}

	var occupied []place.Rect
	for range opts.Count {
		res.Stats.Sampled++

		verb, _ := sample.One(s.rng, verbPool)
		object, ok := s.suggestObject(verb.Word, criteria, nounPool)
		if !ok {
			res.Stats.Dropped++
			continue
		}

		box, placed := placer.FindSpot(s.rng, groupW, groupH, occupied)
		if !placed {
			// The whole vignette is dropped; partial groups are never drawn.
			res.Stats.Dropped++
			continue
		}
		occupied = append(occupied, box)

		g := Group{
			Verb:   verb,
			Object: object,
			Box:    box,
			Target: fmt.Sprintf("The person %s the %s.", verb.Word, object.Word),
		}
		for i := range 3 {
			g.Cells[i] = place.Rect{
				X: box.X + i*(tier.cell+tier.gap),
				Y: box.Y,
				W: tier.cell,
				H: tier.cell,
			}
		}
		res.Groups = append(res.Groups, g)
		res.Targets = append(res.Targets, g.Target)
	}
	res.Stats.Placed = len(res.Groups)

	if len(res.Groups) == 0 {
		return nil, errors.New(errors.ErrCodeNothingPlaced,
			"could not fit any sentence group on the canvas (%d requested, %s)",
			opts.Count, criteria.Summary())
	}
	return res, nil
}
