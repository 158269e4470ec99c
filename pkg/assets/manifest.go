package assets

import (
	"encoding/json"
	"os"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// defaultBackgrounds is the built-in background list used when no manifest
// is configured or the manifest names nothing. If none of these load either,
// the renderer falls back to a solid-color page.
var defaultBackgrounds = []string{
	"backgrounds/park.png",
	"backgrounds/kitchen.png",
	"backgrounds/beach.png",
	"backgrounds/classroom.png",
}

// DefaultBackgrounds returns a copy of the built-in background list.
func DefaultBackgrounds() []string {
	out := make([]string, len(defaultBackgrounds))
	copy(out, defaultBackgrounds)
	return out
}

// backgroundManifest mirrors the on-disk manifest format.
type backgroundManifest struct {
	Backgrounds []string `json:"backgrounds"`
}

// LoadBackgrounds reads the background manifest at path. An empty path or an
// empty list falls back to the built-in set; a configured manifest that
// cannot be read or parsed is a fatal startup error.
func LoadBackgrounds(path string) ([]string, error) {
	if path == "" {
		return DefaultBackgrounds(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestLoad, err, "reading background manifest %s", path)
	}

	var m backgroundManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestLoad, err, "decoding background manifest %s", path)
	}

	if len(m.Backgrounds) == 0 {
		return DefaultBackgrounds(), nil
	}
	return m.Backgrounds, nil
}
