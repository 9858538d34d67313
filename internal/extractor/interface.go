package extractor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/docucast/internal/ocr"
)

// ErrNoContent is returned when a source yields no usable text.
// Batch processing treats it as a per-document skip, not a failure.
var ErrNoContent = errors.New("no usable content")

// Document is the uniform result of any extraction strategy.
// Pages is non-nil only for OCR-backed extractions; Text is always the
// flattened full text, so downstream consumers never special-case shapes.
type Document struct {
	Title string
	Text  string
	Pages []ocr.Page
}

// Extractor extracts a normalized document from a reference.
type Extractor interface {
	Extract(ctx context.Context, ref string) (*Document, error)
}
