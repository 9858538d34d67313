package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/template"
)

const (
	Speaker1 = "speaker-1"
	Speaker2 = "speaker-2"
)

// Line is one spoken turn.
type Line struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Dialogue is the structured output of a generation: hidden brainstorming
// plus the ordered list of spoken lines.
type Dialogue struct {
	Scratchpad string `json:"scratchpad"`
	Lines      []Line `json:"dialogue"`
}

// GenerateRequest carries everything one generation needs. EditedTranscript
// and Feedback are only included in the prompt when non-empty.
type GenerateRequest struct {
	Text             string
	Template         template.Template
	Language         string
	EditedTranscript string
	Feedback         string
}

// Generator turns source text into a dialogue via the configured model.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Dialogue, error)
}

// Validate checks structural soundness: at least one line, known speakers,
// no blank line text.
func (d *Dialogue) Validate() error {
	if len(d.Lines) == 0 {
		return fmt.Errorf("dialogue has no lines")
	}
	for i, line := range d.Lines {
		if line.Speaker != Speaker1 && line.Speaker != Speaker2 {
			return fmt.Errorf("line %d: unknown speaker %q", i, line.Speaker)
		}
		if strings.TrimSpace(line.Text) == "" {
			return fmt.Errorf("line %d: empty text", i)
		}
	}
	return nil
}

// Markdown renders the dialogue as a transcript document.
func (d *Dialogue) Markdown() string {
	var b strings.Builder
	b.WriteString("# Transcript\n")
	for _, line := range d.Lines {
		b.WriteString("\n**" + line.Speaker + ":** " + strings.TrimSpace(line.Text) + "\n")
	}
	return b.String()
}
