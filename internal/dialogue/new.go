package dialogue

import (
	"github.com/nguyentantai21042004/docucast/internal/llm"
	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type implGenerator struct {
	completer  llm.Completer
	maxRetries int
	logger     logger.Logger
}

// New creates a Generator that retries structurally invalid model output
// up to maxRetries times.
func New(completer llm.Completer, maxRetries int, log logger.Logger) Generator {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &implGenerator{
		completer:  completer,
		maxRetries: maxRetries,
		logger:     log,
	}
}
