package llm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

// Options configures a Completer backend.
type Options struct {
	Provider        string // openai | gemini
	Model           string
	APIBase         string   // OpenAI-compatible base URL override
	APIKey          string   // OpenAI key
	APIKeys         []string // Gemini keys, rotated on quota errors
	ReasoningEffort string   // N/A disables the parameter
	WebSearch       bool
}

// New builds a Completer for the configured provider.
func New(opts Options, log logger.Logger) (Completer, error) {
	switch opts.Provider {
	case "openai":
		if opts.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		base := opts.APIBase
		if base == "" {
			base = "https://api.openai.com/v1"
		}
		return &implOpenAI{
			client:          &http.Client{Timeout: 10 * time.Minute},
			baseURL:         base,
			apiKey:          opts.APIKey,
			model:           opts.Model,
			reasoningEffort: opts.ReasoningEffort,
			webSearch:       opts.WebSearch,
			logger:          log,
		}, nil
	case "gemini":
		if len(opts.APIKeys) == 0 {
			return nil, fmt.Errorf("GEMINI_API_KEYS is not set")
		}
		return &implGemini{
			apiKeys: opts.APIKeys,
			model:   opts.Model,
			logger:  log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}
