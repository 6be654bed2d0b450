package transcriber

import (
	"github.com/nguyentantai21042004/prosody-flow/internal/config"
	"github.com/nguyentantai21042004/prosody-flow/internal/logger"
	"github.com/nguyentantai21042004/prosody-flow/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the configured analyzer binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
