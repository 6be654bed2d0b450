package watcher

import "context"

// Watcher monitors the input directory for new annotation files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected annotation file.
type EventHandler func(ctx context.Context, filePath string) error
