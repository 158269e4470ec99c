// Package filter selects word-bank items matching an articulation target.
//
// A Criteria combines three predicates that are ANDed together: word position
// (hard filter), syllable count, and a two-tier phoneme/cluster match. The
// phoneme/cluster predicate passes unconditionally when both sets are empty;
// the position predicate excludes everything when its set is empty. These two
// fallback policies are intentionally different and must stay that way:
// callers are expected to reject an empty position selection up front, while
// an empty phoneme selection means "any sound".
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
)

// Syllable bucket labels. Counts of four and above share one bucket.
const (
	Syll1     = "1"
	Syll2     = "2"
	Syll3     = "3"
	Syll4Plus = "4plus"
)

// Criteria describes the active articulation target. Construct with New.
// Note the zero value matches nothing: its position set is empty.
type Criteria struct {
	Phonemes  map[string]bool
	Clusters  map[string]bool
	Positions map[lexicon.Position]bool
	Syllables map[string]bool
}

// New builds a Criteria from raw selections. Phonemes and clusters are
// normalized to lower case; empty strings are ignored.
func New(phonemes, clusters []string, positions []lexicon.Position, syllables []string) Criteria {
	c := Criteria{
		Phonemes:  make(map[string]bool),
		Clusters:  make(map[string]bool),
		Positions: make(map[lexicon.Position]bool),
		Syllables: make(map[string]bool),
	}
	for _, p := range phonemes {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			c.Phonemes[p] = true
		}
	}
	for _, cl := range clusters {
		if cl = strings.ToLower(strings.TrimSpace(cl)); cl != "" {
			c.Clusters[cl] = true
		}
	}
	for _, pos := range positions {
		c.Positions[pos] = true
	}
	for _, s := range syllables {
		if s = strings.TrimSpace(s); s != "" {
			c.Syllables[s] = true
		}
	}
	return c
}

// HasSelection reports whether at least one position is selected. Generation
// must not start without one: with an empty position set every item fails the
// position predicate, which would surface as a confusing empty-pool error
// instead of a precondition error.
func (c Criteria) HasSelection() bool {
	return len(c.Positions) > 0
}

// Match reports whether a single item passes all three predicates.
func (c Criteria) Match(it lexicon.Item) bool {
	return c.matchPosition(it) && c.matchSyllables(it) && c.matchSound(it)
}

// matchPosition is a hard filter: no positions selected means nothing passes.
func (c Criteria) matchPosition(it lexicon.Item) bool {
	return c.Positions[it.Position]
}

// matchSyllables passes everything when no buckets are selected. Otherwise an
// item passes if its count's bucket is selected, where counts of four or more
// fall into the "4plus" bucket.
func (c Criteria) matchSyllables(it lexicon.Item) bool {
	if len(c.Syllables) == 0 {
		return true
	}
	if c.Syllables[fmt.Sprintf("%d", it.Syllables)] {
		return true
	}
	return c.Syllables[Syll4Plus] && it.Syllables >= 4
}

// matchSound implements the two-tier phoneme/cluster predicate. With both
// sets empty it passes unconditionally (the permissive legacy default).
// Otherwise an item passes on a phoneme tag intersection or on any selected
// cluster occurring orthographically anywhere in the word.
func (c Criteria) matchSound(it lexicon.Item) bool {
	if len(c.Phonemes) == 0 && len(c.Clusters) == 0 {
		return true
	}
	for p := range c.Phonemes {
		if it.HasPhoneme(p) {
			return true
		}
	}
	for cl := range c.Clusters {
		if it.ContainsCluster(cl) {
			return true
		}
	}
	return false
}

// MatchPositionSyllables applies only the position and syllable predicates,
// skipping the phoneme/cluster tier. Sentence composition uses this to vet
// thematically-suggested objects, which are picked for meaning rather than
// for the target sound.
func (c Criteria) MatchPositionSyllables(it lexicon.Item) bool {
	return c.matchPosition(it) && c.matchSyllables(it)
}

// Apply returns the items in pool that match the criteria, preserving the
// pool's order. The input slice is never modified.
func Apply(pool []lexicon.Item, c Criteria) []lexicon.Item {
	var out []lexicon.Item
	for _, it := range pool {
		if c.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Summary renders the active selection for error messages, e.g.
// "phonemes=[r s] clusters=[] positions=[initial final] syllables=[any]".
// Set members are sorted so the output is stable.
func (c Criteria) Summary() string {
	return fmt.Sprintf("phonemes=%s clusters=%s positions=%s syllables=%s",
		sortedSet(c.Phonemes),
		sortedSet(c.Clusters),
		sortedPositions(c.Positions),
		syllableSet(c.Syllables))
}

func sortedSet(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "[" + strings.Join(keys, " ") + "]"
}

func sortedPositions(set map[lexicon.Position]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return "[" + strings.Join(keys, " ") + "]"
}

func syllableSet(set map[string]bool) string {
	if len(set) == 0 {
		return "[any]"
	}
	return sortedSet(set)
}
