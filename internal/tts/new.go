package tts

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type implSynthesizer struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	logger  logger.Logger
}

// New creates an OpenAI speech Synthesizer. baseURL defaults to the
// public API when empty.
func New(apiKey, model, baseURL string, log logger.Logger) (Synthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &implSynthesizer{
		client:  &http.Client{Timeout: 5 * time.Minute},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		logger:  log,
	}, nil
}
