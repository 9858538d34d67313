package transcript

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

const (
	defaultTimedTextBase = "https://video.google.com/timedtext"
	defaultOEmbedBase    = "https://www.youtube.com/oembed"
)

type implService struct {
	client        *http.Client
	logger        logger.Logger
	timedTextBase string
	oembedBase    string
}

// New creates a Service backed by the public timedtext and oembed endpoints.
func New(log logger.Logger) Service {
	return &implService{
		client:        &http.Client{Timeout: 30 * time.Second},
		logger:        log,
		timedTextBase: defaultTimedTextBase,
		oembedBase:    defaultOEmbedBase,
	}
}

// NewWithBase creates a Service against custom endpoints. Used by tests.
func NewWithBase(log logger.Logger, timedTextBase, oembedBase string) Service {
	return &implService{
		client:        &http.Client{Timeout: 30 * time.Second},
		logger:        log,
		timedTextBase: timedTextBase,
		oembedBase:    oembedBase,
	}
}
