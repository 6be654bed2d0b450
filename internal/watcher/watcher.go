package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/prosody-flow/internal/logger"
)

// settleDelay gives the writer time to finish before we read the file.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir  string
	handler   EventHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start blocks, dispatching every new annotation file to the handler with
// bounded concurrency, until the context is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for annotation files (.txt)", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for running jobs...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAnnotationFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New annotation detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, path); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", path, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isAnnotationFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}
