package effects

import (
	"github.com/nguyentantai21042004/prosody-flow/internal/config"
	"github.com/nguyentantai21042004/prosody-flow/internal/logger"
	"github.com/nguyentantai21042004/prosody-flow/pkg/executor"
)

type implApplier struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Applier backed by the configured ffmpeg/ffprobe binaries.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Applier {
	return &implApplier{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
