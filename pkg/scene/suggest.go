package scene

import (
	"strings"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene/filter"
	"github.com/serenakung/speech-scene-generator/pkg/scene/sample"
)

// objectSuggestions maps a verb to object words that make a sensible
// sentence, in preference order. Sentence composition takes the first
// candidate that exists in the noun bank and passes the active position and
// syllable filters; if none qualifies it falls back to the generic filtered
// noun pool.
var objectSuggestions = map[string][]string{
	"sip":   {"cup", "mug", "juice"},
	"drink": {"juice", "milk", "water"},
	"eat":   {"apple", "banana", "sandwich"},
	"bite":  {"apple", "cookie", "carrot"},
	"throw": {"ball", "frisbee", "stone"},
	"catch": {"ball", "fish", "frisbee"},
	"kick":  {"ball", "can", "box"},
	"read":  {"book", "map", "letter"},
	"write": {"letter", "list", "note"},
	"draw":  {"sun", "house", "star"},
	"wash":  {"cup", "car", "dog"},
	"brush": {"hair", "dog", "horse"},
	"push":  {"swing", "cart", "door"},
	"pull":  {"rope", "wagon", "sled"},
	"open":  {"door", "box", "jar"},
	"close": {"door", "window", "book"},
	"wear":  {"hat", "coat", "scarf"},
	"hold":  {"baby", "balloon", "umbrella"},
	"ride":  {"bike", "horse", "bus"},
	"fly":   {"kite", "plane", "balloon"},
	"carry": {"bag", "box", "basket"},
	"cut":   {"paper", "cake", "bread"},
	"paint": {"fence", "wall", "picture"},
	"kiss":  {"baby", "dog", "frog"},
	"hug":   {"bear", "baby", "dog"},
}

// suggestObject resolves an object for the verb. It walks the suggestion
// table first, then falls back to a random pick from the generic filtered
// noun pool. The second return value is false when no object qualifies and
// the sentence slot should be dropped.
func (s *Session) suggestObject(verb string, c filter.Criteria, nounPool []lexicon.Item) (lexicon.Item, bool) {
	for _, candidate := range objectSuggestions[strings.ToLower(verb)] {
		it, ok := s.Bank.FindNoun(candidate)
		if ok && c.MatchPositionSyllables(it) {
			return it, true
		}
	}
	return sample.One(s.rng, nounPool)
}
