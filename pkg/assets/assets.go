// Package assets loads sprite and background images for scene rendering.
//
// A Loader resolves relative image paths against an asset directory and
// memoizes decoded images for the lifetime of the session: each path is read
// from disk at most once and reused by every later pass. Batch loads are
// issued concurrently and a batch is only complete once every load has
// resolved, successfully or not. A failed load never aborts a pass: the
// renderer falls back to a placeholder block for that item.
package assets

import (
	"context"
	"image"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// batchConcurrency bounds how many image decodes run at once in a batch.
const batchConcurrency = 8

// Loader loads and caches images from an asset directory.
type Loader struct {
	dir string

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewLoader creates a loader rooted at dir. Paths passed to Load are
// resolved relative to it.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use
// and from the session cache afterward. Failures are reported as ASSET_LOAD
// errors; they are non-fatal by contract and callers render a placeholder
// instead.
func (l *Loader) Load(path string) (image.Image, error) {
	if err := errors.ValidateAssetPath(path); err != nil {
		return nil, err
	}

	l.mu.Lock()
	if img, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return img, nil
	}
	l.mu.Unlock()

	img, err := imaging.Open(l.resolve(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetLoad, err, "loading image %s", path)
	}

	l.mu.Lock()
	l.cache[path] = img
	l.mu.Unlock()
	return img, nil
}

// LoadBatch loads every path concurrently and waits for the whole batch.
// It returns the images that loaded keyed by path; paths that failed are
// simply absent. Individual failures never fail the batch, and no retry is
// attempted: a failed load is treated as permanent for the pass.
func (l *Loader) LoadBatch(ctx context.Context, paths []string) map[string]image.Image {
	loaded := make(map[string]image.Image)
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, path := range paths {
		if path == "" {
			continue
		}
		g.Go(func() error {
			img, err := l.Load(path)
			if err != nil {
				return nil // fall soft to placeholder
			}
			mu.Lock()
			loaded[path] = img
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return loaded
}

// resolve joins path onto the asset directory.
func (l *Loader) resolve(path string) string {
	if l.dir == "" {
		return path
	}
	return filepath.Join(l.dir, path)
}
