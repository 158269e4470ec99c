// Package scene composes worksheet scenes: it runs the filter, sampler, and
// placer to produce a list of placed, labeled items ready for rendering.
//
// A Session carries the immutable word bank, the background list, and a
// seeded random source for one or more generation passes. Each call to
// Generate is an independent pass; nothing mutates across passes.
package scene

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene/place"
)

// Mode selects the scene layout strategy.
type Mode string

// Scene modes. The three gallery modes differ only in which pools feed the
// sampler; sentence mode builds person-verb-object vignettes instead.
const (
	ModeISpy     Mode = "i-spy"
	ModeActions  Mode = "actions"
	ModeMixed    Mode = "mixed"
	ModeSentence Mode = "sentence"
)

// ValidMode reports whether m names a known scene mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeISpy, ModeActions, ModeMixed, ModeSentence:
		return true
	}
	return false
}

// Placement parameters per mode. Sentence groups have a larger footprint, so
// they get a wider margin, more padding, and a deeper retry budget.
const (
	galleryMargin   = 72
	galleryPad      = 12
	galleryMaxTries = 300

	sentenceMargin   = 80
	sentencePad      = 16
	sentenceMaxTries = 500
)

// Kind-dependent gallery size ranges, sampled uniformly per item.
const (
	verbMinW, verbMaxW = 280, 420
	verbMinH, verbMaxH = 180, 260
	nounMinW, nounMaxW = 360, 560
	nounMinH, nounMaxH = 220, 320
)

// Sentence count bounds.
const (
	MinSentences = 1
	MaxSentences = 6
)

// Item is a lexical item bound to its placement and lexical class.
type Item struct {
	lexicon.Item
	Kind lexicon.Kind `json:"kind"`
	Box  place.Rect   `json:"box"`
}

// Group is one sentence vignette: three equal cells (person placeholder,
// verb, object) placed left-to-right as a single atomic unit.
type Group struct {
	Verb   lexicon.Item  `json:"verb"`
	Object lexicon.Item  `json:"object"`
	Box    place.Rect    `json:"box"`   // combined bounding box
	Cells  [3]place.Rect `json:"cells"` // person, verb, object
	Target string        `json:"target"`
}

// Stats summarizes one generation pass.
type Stats struct {
	NounPool int `json:"noun_pool"` // filtered noun pool size
	VerbPool int `json:"verb_pool"` // filtered verb pool size
	Sampled  int `json:"sampled"`   // items or sentence slots drawn
	Placed   int `json:"placed"`    // items or groups that found a spot
	Dropped  int `json:"dropped"`   // items or groups dropped for any reason
}

// Result is the output of one generation pass, consumed by the renderer.
type Result struct {
	ID         string   `json:"id"`
	Mode       Mode     `json:"mode"`
	Items      []Item   `json:"items,omitempty"`
	Groups     []Group  `json:"groups,omitempty"`
	Targets    []string `json:"targets"`
	Background string   `json:"background,omitempty"`
	Stats      Stats    `json:"stats"`
}

// Session holds the immutable inputs shared by generation passes. It replaces
// the mutable module-level word bank and background list of earlier versions
// of this tool: everything the composer needs is injected here once.
type Session struct {
	Bank        *lexicon.Bank
	Backgrounds []string
	rng         *rand.Rand
}

// NewSession creates a session with a seeded random source. The same seed and
// inputs reproduce the same scenes, which the tests rely on; production
// callers seed from entropy.
func NewSession(bank *lexicon.Bank, backgrounds []string, seed uint64) *Session {
	return &Session{
		Bank:        bank,
		Backgrounds: backgrounds,
		rng:         rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
	}
}

// newID returns a fresh scene identifier.
func newID() string {
	return uuid.NewString()
}
