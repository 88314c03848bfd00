package kb

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets a burst of writes from an editor collapse into one run.
const settleDelay = 100 * time.Millisecond

// Watch calls fn each time the file at path is written or recreated,
// until ctx is done. Errors from fn are logged and watching continues.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are still noticed.
func Watch(ctx context.Context, logger *zap.Logger, path string, fn func(context.Context) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	logger.Info("watching for changes", zap.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(event, abs) {
				continue
			}
			time.Sleep(settleDelay)
			drain(watcher.Events)
			if err := fn(ctx); err != nil {
				logger.Error("Error re-running after change", zap.String("path", abs), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}

func isRelevant(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drain discards events queued while the file settled.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}
