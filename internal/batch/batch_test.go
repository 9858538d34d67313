package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/docucast/internal/extractor"
	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/source"
)

type fakeExtractor struct {
	docs  map[string]*extractor.Document
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, ref string) (*extractor.Document, error) {
	f.calls++
	doc, ok := f.docs[ref]
	if !ok {
		return nil, extractor.ErrNoContent
	}
	return doc, nil
}

type fakeRegistry struct {
	ext *fakeExtractor
}

func (f *fakeRegistry) Get(kind source.Kind) (extractor.Extractor, error) {
	return f.ext, nil
}

func newTestProcessor(t *testing.T, docs map[string]*extractor.Document) (Processor, *fakeExtractor, string) {
	t.Helper()
	dir := t.TempDir()
	ext := &fakeExtractor{docs: docs}
	return New(&fakeRegistry{ext: ext}, dir, logger.New("error")), ext, dir
}

func TestProcessRefsWritesArtifactPair(t *testing.T) {
	ref := "https://example.com/article"
	proc, _, dir := newTestProcessor(t, map[string]*extractor.Document{
		ref: {Title: "My Article", Text: "HELLO WORLD\nhttps://x.org\n"},
	})

	require.NoError(t, proc.ProcessRefs(context.Background(), []string{ref}, false))

	md, err := os.ReadFile(filepath.Join(dir, "My_Article.md"))
	require.NoError(t, err)
	assert.Equal(t, "# HELLO WORLD\n[Lien](https://x.org)\n", string(md))

	raw, err := os.ReadFile(filepath.Join(dir, "My_Article.json"))
	require.NoError(t, err)

	var artifact jsonArtifact
	require.NoError(t, json.Unmarshal(raw, &artifact))
	require.Len(t, artifact.Pages, 1)
	assert.Equal(t, 0, artifact.Pages[0].Index)
	assert.Equal(t, string(md), artifact.Pages[0].Markdown)
}

func TestProcessRefsDeduplicates(t *testing.T) {
	ref := "https://example.com/article"
	proc, ext, dir := newTestProcessor(t, map[string]*extractor.Document{
		ref: {Title: "Doc", Text: "body"},
	})

	require.NoError(t, proc.ProcessRefs(context.Background(), []string{ref, ref, ref}, false))

	assert.Equal(t, 1, ext.calls)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // one .md + one .json
}

func TestProcessRefsTitleCollision(t *testing.T) {
	proc, _, dir := newTestProcessor(t, map[string]*extractor.Document{
		"https://a.example/doc": {Title: "Same Title", Text: "first"},
		"https://b.example/doc": {Title: "Same Title", Text: "second"},
	})

	refs := []string{"https://a.example/doc", "https://b.example/doc"}
	require.NoError(t, proc.ProcessRefs(context.Background(), refs, false))

	for _, name := range []string{"Same_Title.md", "Same_Title_2.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestProcessRefsRejectsLocalInBatch(t *testing.T) {
	proc, ext, _ := newTestProcessor(t, nil)

	refs := []string{"/tmp/local.pdf", "https://example.com/a"}
	require.NoError(t, proc.ProcessRefs(context.Background(), refs, false))

	// Only the HTTP reference reaches extraction.
	assert.Equal(t, 1, ext.calls)
}

func TestProcessRefsAcceptsLocalSingle(t *testing.T) {
	ref := "/tmp/local.pdf"
	proc, ext, _ := newTestProcessor(t, map[string]*extractor.Document{
		ref: {Title: "Local", Text: "body"},
	})

	require.NoError(t, proc.ProcessRefs(context.Background(), []string{ref}, false))
	assert.Equal(t, 1, ext.calls)
}

func TestProcessRefsSkipsEmptyContent(t *testing.T) {
	proc, _, dir := newTestProcessor(t, map[string]*extractor.Document{
		"https://example.com/empty": {Title: "Empty", Text: "   \n  "},
	})

	require.NoError(t, proc.ProcessRefs(context.Background(), []string{"https://example.com/empty"}, false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessRefsLocalTextFile(t *testing.T) {
	inbox := t.TempDir()
	path := filepath.Join(inbox, "meeting_notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("AGENDA\nDiscuss roadmap.\n"), 0644))

	out := t.TempDir()
	log := logger.New("error")
	proc := New(extractor.New(nil, nil, nil, log), out, log)

	require.NoError(t, proc.ProcessRefs(context.Background(), []string{path}, false))

	md, err := os.ReadFile(filepath.Join(out, "meeting_notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "# AGENDA\nDiscuss roadmap.\n", string(md))

	_, err = os.Stat(filepath.Join(out, "meeting_notes.json"))
	assert.NoError(t, err)
}

func TestReadRefs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.csv")

	content := "Name,URL\nfirst,https://a.example\nsecond,https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	refs, err := ReadRefs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, refs)
}

func TestReadRefsNoHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.csv")

	content := "https://a.example\nhttps://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	refs, err := ReadRefs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, refs)
}
