package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the inbox for new reference lists and documents.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Supported files: .csv, .pdf, .ipynb, .txt, .md, .mmd")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if IsSupportedFile(event.Name) {
					w.logger.Info(ctx, "New file detected: %s", event.Name)

					// Small delay to ensure the file is fully written
					time.Sleep(500 * time.Millisecond)

					select {
					case w.semaphore <- struct{}{}:
						w.wg.Add(1)
						go func(filePath string) {
							defer w.wg.Done()
							defer func() { <-w.semaphore }()

							if err := w.handler(ctx, filePath); err != nil {
								w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
							}
						}(event.Name)
					case <-ctx.Done():
						return ctx.Err()
					}
				} else {
					w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// IsSupportedFile reports whether the file is a reference list or a
// document the pipeline can process directly.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	supported := []string{".csv", ".pdf", ".ipynb", ".txt", ".md", ".mmd"}

	for _, s := range supported {
		if ext == s {
			return true
		}
	}

	return false
}
