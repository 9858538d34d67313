package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type notebookExtractor struct {
	logger logger.Logger
}

func (e *notebookExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	text, err := notebookText(data)
	if err != nil {
		return nil, err
	}
	return wrapText(ref, "", text), nil
}

type notebookRemoteExtractor struct {
	client *http.Client
	logger logger.Logger
}

func (e *notebookRemoteExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	path, cleanup, err := downloadScratch(ctx, e.client, ref, "docucast-*.ipynb")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	text, err := notebookText(data)
	if err != nil {
		return nil, err
	}
	return wrapText(ref, "", text), nil
}

type notebookFile struct {
	Cells []notebookCell `json:"cells"`
}

type notebookCell struct {
	CellType string          `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
}

// notebookText concatenates the source of markdown and code cells in
// document order. Cell sources may be a string or a list of lines.
func notebookText(data []byte) (string, error) {
	var nb notebookFile
	if err := json.Unmarshal(data, &nb); err != nil {
		return "", fmt.Errorf("parse notebook: %w", err)
	}

	var parts []string
	for _, cell := range nb.Cells {
		if cell.CellType != "markdown" && cell.CellType != "code" {
			continue
		}
		parts = append(parts, cellSource(cell.Source))
	}

	return strings.Join(parts, "\n"), nil
}

func cellSource(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, "")
	}
	return ""
}
