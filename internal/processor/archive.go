package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// archive moves the processed annotation and its audio out of the input
// directory so the watcher never picks them up again.
func (p *implProcessor) archive(ctx context.Context, paths ...string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	for _, src := range paths {
		dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(src))
		p.logger.Debug(ctx, "Archiving: %s -> %s", src, dest)

		if err := os.Rename(src, dest); err != nil {
			// Rename fails across filesystems; fall back to copy+remove.
			if err := copyFile(src, dest); err != nil {
				return fmt.Errorf("archive %s: %w", src, err)
			}
			if err := os.Remove(src); err != nil {
				p.logger.Warn(ctx, "Failed to remove %s after copy: %v", src, err)
			}
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
