package ocr

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

const defaultBaseURL = "https://api.mistral.ai"

type implService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// New creates an OCR Service against the Mistral API.
// baseURL overrides the API endpoint when non-empty (tests, proxies).
func New(apiKey, model, baseURL string, log logger.Logger) Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &implService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
		logger:  log,
	}
}
