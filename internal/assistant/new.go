package assistant

import (
	"github.com/nguyentantai21042004/prosody-flow/internal/logger"
)

type implAssistant struct {
	apiKey string
	model  string
	logger logger.Logger
}

// New creates an Assistant backed by the Gemini API. An empty key is allowed;
// SuggestMarkup then reports that the feature is unconfigured.
func New(apiKey, model string, log logger.Logger) Assistant {
	return &implAssistant{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}
