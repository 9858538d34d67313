package llm

import (
	"context"
	"encoding/json"
)

// Request describes one structured completion. The schema constrains the
// model output; callers still validate the returned JSON themselves.
type Request struct {
	Prompt     string
	SchemaName string
	Schema     json.RawMessage
}

// Completer produces a single structured completion per call.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
