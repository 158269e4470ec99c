// Package lexicon defines the tagged word bank the scene generator draws from.
//
// A lexicon exposes two collections, nouns and verbs, each a list of items
// tagged with the word-position of the target sound, syllable count, phoneme
// tags, and an optional image path. The bank is loaded once at startup,
// treated as immutable, and injected into every generation session.
package lexicon

import (
	"strings"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// Position indicates where in the word the target sound occurs.
type Position string

// Word positions for articulation targeting.
const (
	PositionInitial Position = "initial"
	PositionMedial  Position = "medial"
	PositionFinal   Position = "final"
)

// ValidPosition reports whether p is one of the three known positions.
func ValidPosition(p Position) bool {
	switch p {
	case PositionInitial, PositionMedial, PositionFinal:
		return true
	}
	return false
}

// Kind distinguishes the two lexical classes in the bank.
type Kind string

// Lexical classes.
const (
	KindNoun Kind = "noun"
	KindVerb Kind = "verb"
)

// Item is one tagged entry in the word bank. Items are immutable once loaded.
type Item struct {
	Word      string   `json:"word"`
	Position  Position `json:"position"`
	Syllables int      `json:"syllables"`
	Phonemes  []string `json:"phonemes,omitempty"`
	Image     string   `json:"image,omitempty"`
}

// HasPhoneme reports whether the item is tagged with the given phoneme.
// Matching is case-insensitive exact comparison against the tag set.
func (it Item) HasPhoneme(p string) bool {
	for _, tag := range it.Phonemes {
		if strings.EqualFold(tag, p) {
			return true
		}
	}
	return false
}

// ContainsCluster reports whether the cluster string occurs anywhere in the
// item's word, case-insensitively. This is an orthographic check, not
// phonetic analysis: "str" matches both "straw" and "bistro".
func (it Item) ContainsCluster(cluster string) bool {
	if cluster == "" {
		return false
	}
	return strings.Contains(strings.ToLower(it.Word), strings.ToLower(cluster))
}

// Bank holds the two lexical collections.
type Bank struct {
	Nouns []Item `json:"nouns"`
	Verbs []Item `json:"verbs"`
}

// ByKind returns the collection for the given lexical class.
func (b *Bank) ByKind(k Kind) []Item {
	if k == KindVerb {
		return b.Verbs
	}
	return b.Nouns
}

// FindNoun returns the noun entry for word, matched case-insensitively.
// The second return value reports whether the word exists in the noun bank.
func (b *Bank) FindNoun(word string) (Item, bool) {
	for _, it := range b.Nouns {
		if strings.EqualFold(it.Word, word) {
			return it, true
		}
	}
	return Item{}, false
}

// validate checks every item in the bank for well-formed tags.
func (b *Bank) validate() error {
	for _, kind := range []Kind{KindNoun, KindVerb} {
		for _, it := range b.ByKind(kind) {
			if it.Word == "" {
				return errors.New(errors.ErrCodeLexiconLoad, "%s entry with empty word", kind)
			}
			if !ValidPosition(it.Position) {
				return errors.New(errors.ErrCodeLexiconLoad,
					"%s %q: invalid position %q (must be initial, medial, or final)",
					kind, it.Word, it.Position)
			}
			if it.Syllables < 0 {
				return errors.New(errors.ErrCodeLexiconLoad,
					"%s %q: negative syllable count %d", kind, it.Word, it.Syllables)
			}
		}
	}
	return nil
}
