package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/extractor"
	"github.com/nguyentantai21042004/docucast/internal/source"
)

// pageArtifact mirrors the persisted JSON shape: a single-page wrapper
// carrying the formatted markdown.
type pageArtifact struct {
	Index    int    `json:"index"`
	Markdown string `json:"markdown"`
}

type jsonArtifact struct {
	Pages []pageArtifact `json:"pages"`
}

func (p *implProcessor) ProcessRefs(ctx context.Context, refs []string, ocr bool) error {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Scheme validation applies only to multi-reference batches; a single
	// reference may be a local path.
	validateScheme := len(refs) > 1

	processed := make(map[string]bool)
	usedTitles := make(map[string]int)

	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}

		if validateScheme && !source.IsHTTP(ref) {
			p.logger.Warn(ctx, "Skipping invalid reference (no HTTP scheme): %s", ref)
			continue
		}

		if processed[ref] {
			p.logger.Info(ctx, "Reference already processed, skipping: %s", ref)
			continue
		}
		processed[ref] = true

		p.logger.Info(ctx, "Extracting: %s", ref)

		if err := p.processOne(ctx, ref, ocr, usedTitles); err != nil {
			if errors.Is(err, extractor.ErrNoContent) {
				p.logger.Warn(ctx, "No usable content: %s", ref)
			} else {
				p.logger.Error(ctx, "Failed to process %s: %v", ref, err)
			}
			continue
		}
	}

	return nil
}

func (p *implProcessor) processOne(ctx context.Context, ref string, ocr bool, usedTitles map[string]int) error {
	kind := source.Classify(ref, ocr)

	ext, err := p.registry.Get(kind)
	if err != nil {
		return err
	}

	doc, err := ext.Extract(ctx, ref)
	if err != nil {
		return err
	}
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return extractor.ErrNoContent
	}

	title := uniqueTitle(SanitizeTitle(doc.Title), usedTitles)
	markdown := FormatMarkdown(doc.Text)

	mdPath := filepath.Join(p.outputDir, title+".md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write markdown artifact: %w", err)
	}
	p.logger.Info(ctx, "Markdown: %s", mdPath)

	payload, err := json.MarshalIndent(jsonArtifact{
		Pages: []pageArtifact{{Index: 0, Markdown: markdown}},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json artifact: %w", err)
	}

	jsonPath := filepath.Join(p.outputDir, title+".json")
	if err := os.WriteFile(jsonPath, payload, 0644); err != nil {
		return fmt.Errorf("write json artifact: %w", err)
	}
	p.logger.Info(ctx, "JSON: %s", jsonPath)

	return nil
}

// uniqueTitle suffixes repeated sanitized titles within one run so a later
// document never silently overwrites an earlier one.
func uniqueTitle(title string, used map[string]int) string {
	used[title]++
	if used[title] == 1 {
		return title
	}
	return fmt.Sprintf("%s_%d", title, used[title])
}
