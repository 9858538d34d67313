package session

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/docucast/internal/dialogue"
	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/renderer"
	"github.com/nguyentantai21042004/docucast/internal/template"
)

type fakeGenerator struct {
	dlg      *dialogue.Dialogue
	err      error
	requests []dialogue.GenerateRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req dialogue.GenerateRequest) (*dialogue.Dialogue, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.dlg, nil
}

type fakeRenderer struct {
	err   error
	calls int
	last  *dialogue.Dialogue
}

func (f *fakeRenderer) Render(ctx context.Context, dlg *dialogue.Dialogue) (*renderer.Result, error) {
	f.calls++
	f.last = dlg
	if f.err != nil {
		return nil, f.err
	}
	return &renderer.Result{AudioPath: fmt.Sprintf("render-%d.mp3", f.calls), Transcript: "t"}, nil
}

func sampleDialogue() *dialogue.Dialogue {
	return &dialogue.Dialogue{
		Scratchpad: "notes",
		Lines: []dialogue.Line{
			{Speaker: dialogue.Speaker1, Text: "First line."},
			{Speaker: dialogue.Speaker2, Text: "Second line."},
		},
	}
}

func TestGenerateCommitsOnSuccess(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	rend := &fakeRenderer{}
	s := New(gen, rend, logger.New("error"))

	assert.Equal(t, StateEmpty, s.State())

	res, err := s.Generate(context.Background(), "source", template.Template{}, "fr")
	require.NoError(t, err)
	assert.Equal(t, "render-1.mp3", res.AudioPath)
	assert.Equal(t, StateRendered, s.State())

	dlg, err := s.Dialogue()
	require.NoError(t, err)
	assert.Len(t, dlg.Lines, 2)
}

func TestGenerateFailureLeavesStateUntouched(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	rend := &fakeRenderer{}
	s := New(gen, rend, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "")
	require.NoError(t, err)

	rend.err = fmt.Errorf("tts down")
	_, err = s.Generate(context.Background(), "other source", template.Template{}, "")
	require.Error(t, err)

	// First dialogue and state survive the failed attempt.
	assert.Equal(t, StateRendered, s.State())
	dlg, err := s.Dialogue()
	require.NoError(t, err)
	assert.Equal(t, "First line.", dlg.Lines[0].Text)
}

func TestApplyEditsAndReRender(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	rend := &fakeRenderer{}
	s := New(gen, rend, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "")
	require.NoError(t, err)

	edits := []dialogue.Line{{Speaker: dialogue.Speaker1, Text: "Edited line."}}
	require.NoError(t, s.ApplyEdits(edits))
	assert.Equal(t, StateEdited, s.State())

	res, err := s.ReRender(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "render-2.mp3", res.AudioPath)
	assert.Equal(t, StateRendered, s.State())

	// Re-render used the edited lines, no new generation happened.
	assert.Equal(t, "Edited line.", rend.last.Lines[0].Text)
	assert.Len(t, gen.requests, 1)
}

func TestApplyEditsRejectsInvalid(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	s := New(gen, &fakeRenderer{}, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "")
	require.NoError(t, err)

	err = s.ApplyEdits([]dialogue.Line{{Speaker: "narrator", Text: "bad"}})
	require.Error(t, err)

	dlg, err := s.Dialogue()
	require.NoError(t, err)
	assert.Equal(t, "First line.", dlg.Lines[0].Text)
}

func TestOperationsWithoutDialogue(t *testing.T) {
	s := New(&fakeGenerator{}, &fakeRenderer{}, logger.New("error"))

	_, err := s.ReRender(context.Background())
	assert.ErrorIs(t, err, ErrNoDialogue)

	err = s.ApplyEdits([]dialogue.Line{{Speaker: dialogue.Speaker1, Text: "x"}})
	assert.ErrorIs(t, err, ErrNoDialogue)

	_, err = s.Regenerate(context.Background(), "feedback", true)
	assert.ErrorIs(t, err, ErrNoDialogue)

	_, err = s.TranscriptMarkdown()
	assert.ErrorIs(t, err, ErrNoDialogue)

	_, err = s.Result()
	assert.ErrorIs(t, err, ErrNoDialogue)
}

func TestRegenerateFeedsTranscriptAndFeedback(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	s := New(gen, &fakeRenderer{}, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "fr")
	require.NoError(t, err)

	_, err = s.Regenerate(context.Background(), "make it shorter", true)
	require.NoError(t, err)

	require.Len(t, gen.requests, 2)
	req := gen.requests[1]
	assert.Equal(t, "source", req.Text)
	assert.Equal(t, "fr", req.Language)
	assert.Equal(t, "make it shorter", req.Feedback)
	assert.Contains(t, req.EditedTranscript, "speaker-1: First line.")
}

func TestRegenerateWithoutTranscript(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	s := New(gen, &fakeRenderer{}, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "")
	require.NoError(t, err)

	_, err = s.Regenerate(context.Background(), "different angle", false)
	require.NoError(t, err)

	assert.Empty(t, gen.requests[1].EditedTranscript)
}

func TestTranscriptMarkdown(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	s := New(gen, &fakeRenderer{}, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "")
	require.NoError(t, err)

	md, err := s.TranscriptMarkdown()
	require.NoError(t, err)
	assert.Contains(t, md, "# Transcript")
	assert.Contains(t, md, "**speaker-1:** First line.")
}

func TestExportDocx(t *testing.T) {
	gen := &fakeGenerator{dlg: sampleDialogue()}
	s := New(gen, &fakeRenderer{}, logger.New("error"))

	_, err := s.Generate(context.Background(), "source", template.Template{}, "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "transcript.docx")
	require.NoError(t, s.ExportDocx("My Podcast", path))
	assert.FileExists(t, path)
}
