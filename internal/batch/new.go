package batch

import (
	"github.com/nguyentantai21042004/docucast/internal/extractor"
	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/source"
)

// ExtractorRegistry resolves a source kind to its extraction strategy.
// Satisfied by *extractor.Registry.
type ExtractorRegistry interface {
	Get(kind source.Kind) (extractor.Extractor, error)
}

type implProcessor struct {
	registry  ExtractorRegistry
	outputDir string
	logger    logger.Logger
}

// New creates a Processor writing artifacts into outputDir.
func New(registry ExtractorRegistry, outputDir string, log logger.Logger) Processor {
	return &implProcessor{
		registry:  registry,
		outputDir: outputDir,
		logger:    log,
	}
}
