package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

func TestTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meeting_notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("First point.\nSecond point.\n"), 0644))

	ext := &textExtractor{logger: logger.New("error")}

	doc, err := ext.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "meeting_notes", doc.Title)
	assert.Equal(t, "First point.\nSecond point.\n", doc.Text)
}

func TestTextExtractorEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.md")
	require.NoError(t, os.WriteFile(path, []byte("  \n \n"), 0644))

	ext := &textExtractor{logger: logger.New("error")}

	_, err := ext.Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestTextExtractorMissingFile(t *testing.T) {
	ext := &textExtractor{logger: logger.New("error")}

	_, err := ext.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoContent)
}
