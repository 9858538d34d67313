package renderer

import (
	"context"

	"github.com/nguyentantai21042004/docucast/internal/dialogue"
)

// Result holds the rendered audio path and the plain transcript.
// Characters counts the text of the lines that produced audio.
type Result struct {
	AudioPath  string
	Transcript string
	Characters int
}

// Renderer synthesizes every dialogue line and concatenates the audio in
// line order.
type Renderer interface {
	Render(ctx context.Context, dlg *dialogue.Dialogue) (*Result, error)
}
