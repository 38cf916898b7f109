package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"kkotdam/logging"
)

const seedDebounce = 500 * time.Millisecond

// SeedWatcher re-imports the catalog seed file whenever it changes
type SeedWatcher struct {
	seeds SeedServiceInterface
	path  string
}

// NewSeedWatcher creates a new SeedWatcher for path
func NewSeedWatcher(seeds SeedServiceInterface, path string) *SeedWatcher {
	return &SeedWatcher{
		seeds: seeds,
		path:  filepath.Clean(path),
	}
}

// Watch blocks until ctx is done. Editors often replace files instead of writing them,
// so the parent directory is watched and events are filtered to the seed file.
func (w *SeedWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	logging.Info().Str("file", w.path).Msg("👀 Watching catalog seed file")

	// bursts of events collapse into one import
	timer := time.NewTimer(seedDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			timer.Reset(seedDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn().Err(err).Msg("⚠️  Seed watcher error")
		case <-timer.C:
			if _, err := w.seeds.ImportFile(ctx, w.path); err != nil {
				logging.Error().Err(err).Str("file", w.path).Msg("❌ Error re-importing catalog seed")
			}
		}
	}
}
