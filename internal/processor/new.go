package processor

import (
	"github.com/nguyentantai21042004/prosody-flow/internal/assistant"
	"github.com/nguyentantai21042004/prosody-flow/internal/config"
	"github.com/nguyentantai21042004/prosody-flow/internal/effects"
	"github.com/nguyentantai21042004/prosody-flow/internal/logger"
	"github.com/nguyentantai21042004/prosody-flow/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	effects     effects.Applier
	assistant   assistant.Assistant
	logger      logger.Logger
}

// New creates a Processor wired to its collaborators.
func New(cfg *config.Config, trans transcriber.Transcriber, fx effects.Applier, asst assistant.Assistant, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: trans,
		effects:     fx,
		assistant:   asst,
		logger:      log,
	}
}
