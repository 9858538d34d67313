package batch

import "context"

// Processor drives classification → extraction → artifact persistence
// over one or more source references.
type Processor interface {
	// ProcessRefs extracts each reference and writes one Markdown and one
	// JSON artifact per document. Failures are isolated per reference.
	// With more than one reference, non-HTTP(S) references are rejected;
	// a single reference may be a local path.
	ProcessRefs(ctx context.Context, refs []string, ocr bool) error

	// ProcessFile reads a CSV reference list and processes its rows.
	ProcessFile(ctx context.Context, path string, ocr bool) error
}
