package campaign

// watcher.go observes the framework-owned failures directory while a
// campaign runs, logging each newly persisted failure input. Watcher
// problems are logged and never fail the campaign.

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// WatchFailures watches <campaignDir>/failures until ctx is done,
// logging files as the framework creates them. The directory is created
// if missing so watching can start before the framework does.
func WatchFailures(ctx context.Context, logger zerolog.Logger, campaignDir string) {
	failureDir := filepath.Join(campaignDir, "failures")
	if err := EnsureDirectory(failureDir); err != nil {
		logger.Warn().Err(err).Str("dir", failureDir).Msg("Failed to prepare failure directory, watcher disabled")
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to create failure watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(failureDir); err != nil {
		logger.Warn().Err(err).Str("dir", failureDir).Msg("Failed to watch failure directory")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				var size int64
				if info, err := os.Stat(event.Name); err == nil {
					size = info.Size()
				}
				logger.Info().
					Str("file", event.Name).
					Int64("size", size).
					Msg("Framework recorded a failing input")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("Failure watcher error")
		}
	}
}
