package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/dialogue"
	"github.com/nguyentantai21042004/docucast/internal/renderer"
	"github.com/nguyentantai21042004/docucast/internal/template"
)

// Generate produces a fresh dialogue from text and renders it. The session
// only commits the new dialogue after both steps succeed.
func (s *Session) Generate(ctx context.Context, text string, tpl template.Template, language string) (*renderer.Result, error) {
	dlg, err := s.generator.Generate(ctx, dialogue.GenerateRequest{
		Text:     text,
		Template: tpl,
		Language: language,
	})
	if err != nil {
		return nil, fmt.Errorf("generate dialogue: %w", err)
	}

	res, err := s.renderer.Render(ctx, dlg)
	if err != nil {
		return nil, fmt.Errorf("render dialogue: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.tpl = tpl
	s.language = language
	s.dlg = dlg
	s.result = res
	s.state = StateRendered

	return res, nil
}

// ApplyEdits replaces the stored dialogue lines wholesale. The scratchpad
// is kept; the edited lines must themselves form a valid dialogue.
func (s *Session) ApplyEdits(lines []dialogue.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dlg == nil {
		return ErrNoDialogue
	}

	edited := &dialogue.Dialogue{Scratchpad: s.dlg.Scratchpad, Lines: lines}
	if err := edited.Validate(); err != nil {
		return fmt.Errorf("invalid edits: %w", err)
	}

	s.dlg = edited
	s.state = StateEdited
	return nil
}

// ReRender synthesizes audio from the stored dialogue without a new
// model call.
func (s *Session) ReRender(ctx context.Context) (*renderer.Result, error) {
	s.mu.Lock()
	dlg := s.dlg
	s.mu.Unlock()

	if dlg == nil {
		return nil, ErrNoDialogue
	}

	res, err := s.renderer.Render(ctx, dlg)
	if err != nil {
		return nil, fmt.Errorf("render dialogue: %w", err)
	}

	s.mu.Lock()
	s.result = res
	s.state = StateRendered
	s.mu.Unlock()

	return res, nil
}

// Regenerate runs a new generation against the original text, feeding the
// current (possibly edited) transcript and the user feedback back to the
// model, then renders the result.
func (s *Session) Regenerate(ctx context.Context, feedback string, useEditedTranscript bool) (*renderer.Result, error) {
	s.mu.Lock()
	if s.dlg == nil {
		s.mu.Unlock()
		return nil, ErrNoDialogue
	}
	text := s.text
	tpl := s.tpl
	language := s.language
	prior := ""
	if useEditedTranscript {
		prior = plainTranscript(s.dlg)
	}
	s.mu.Unlock()

	dlg, err := s.generator.Generate(ctx, dialogue.GenerateRequest{
		Text:             text,
		Template:         tpl,
		Language:         language,
		EditedTranscript: prior,
		Feedback:         feedback,
	})
	if err != nil {
		return nil, fmt.Errorf("regenerate dialogue: %w", err)
	}

	res, err := s.renderer.Render(ctx, dlg)
	if err != nil {
		return nil, fmt.Errorf("render dialogue: %w", err)
	}

	s.mu.Lock()
	s.dlg = dlg
	s.result = res
	s.state = StateRendered
	s.mu.Unlock()

	return res, nil
}

// State reports the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dialogue returns a copy of the stored dialogue.
func (s *Session) Dialogue() (*dialogue.Dialogue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dlg == nil {
		return nil, ErrNoDialogue
	}
	cp := &dialogue.Dialogue{Scratchpad: s.dlg.Scratchpad}
	cp.Lines = append(cp.Lines, s.dlg.Lines...)
	return cp, nil
}

// Result returns the last render result.
func (s *Session) Result() (*renderer.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return nil, ErrNoDialogue
	}
	return s.result, nil
}

// TranscriptMarkdown renders the stored dialogue as a markdown transcript.
func (s *Session) TranscriptMarkdown() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dlg == nil {
		return "", ErrNoDialogue
	}
	return s.dlg.Markdown(), nil
}

func plainTranscript(dlg *dialogue.Dialogue) string {
	var b strings.Builder
	for _, line := range dlg.Lines {
		b.WriteString(line.Speaker + ": " + line.Text + "\n\n")
	}
	return b.String()
}
