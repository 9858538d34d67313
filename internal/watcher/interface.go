package watcher

import "context"

// Watcher monitors the inbox directory for new reference lists and
// documents.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly arrived file.
type EventHandler func(ctx context.Context, filePath string) error
