package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/prosody-flow/internal/assistant"
	"github.com/nguyentantai21042004/prosody-flow/internal/config"
	"github.com/nguyentantai21042004/prosody-flow/internal/effects"
	"github.com/nguyentantai21042004/prosody-flow/internal/logger"
	"github.com/nguyentantai21042004/prosody-flow/internal/processor"
	"github.com/nguyentantai21042004/prosody-flow/internal/transcriber"
	"github.com/nguyentantai21042004/prosody-flow/internal/watcher"
	"github.com/nguyentantai21042004/prosody-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Prosody Annotation Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	trans := transcriber.New(cfg, exec, log)
	fx := effects.New(cfg, exec, log)
	asst := assistant.New(cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	proc := processor.New(cfg, trans, fx, asst, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline ready")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Analyzer: %s (%s, %d threads)", cfg.Analyzer.BinaryPath, cfg.Analyzer.Language, cfg.Analyzer.Threads)
	log.Info(ctx, "Concurrent jobs: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates the working directories if they don't exist.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
