package lexicon

import (
	"encoding/json"
	"io"
	"os"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// bankFile mirrors the on-disk word bank format. Pointer slices distinguish
// an absent key from an empty list so the loader can name what is missing.
type bankFile struct {
	Nouns *[]Item `json:"nouns"`
	Verbs *[]Item `json:"verbs"`
}

// Read decodes a word bank from r. It fails descriptively if either the
// "nouns" or "verbs" key is absent, and validates every entry's tags.
func Read(r io.Reader) (*Bank, error) {
	var f bankFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLexiconLoad, err, "decoding word bank")
	}

	if f.Nouns == nil {
		return nil, errors.New(errors.ErrCodeLexiconLoad, `word bank is missing the "nouns" key`)
	}
	if f.Verbs == nil {
		return nil, errors.New(errors.ErrCodeLexiconLoad, `word bank is missing the "verbs" key`)
	}

	b := &Bank{Nouns: *f.Nouns, Verbs: *f.Verbs}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Load reads a word bank from the JSON file at path.
func Load(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLexiconLoad, err, "opening word bank %s", path)
	}
	defer f.Close()
	return Read(f)
}
