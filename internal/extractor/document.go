package extractor

import (
	"net/url"
	"path"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/ocr"
)

// titleFromRef derives a fallback title from the reference path basename.
func titleFromRef(ref string) string {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if base == "" || base == "." || base == "/" {
		return "document"
	}
	return base
}

// wrapText builds a Document from plain extracted text, deriving the title
// from the reference when the extractor supplies none.
func wrapText(ref, title, text string) *Document {
	if title == "" {
		title = titleFromRef(ref)
	}
	return &Document{Title: title, Text: text}
}

// wrapPages builds a Document from a structured OCR page list: the page
// markdown is flattened into Text at the extractor boundary, and the page
// list is retained for consumers that persist the structured shape.
func wrapPages(ref string, pages []ocr.Page) *Document {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, p.Markdown)
	}
	return &Document{
		Title: titleFromRef(ref),
		Text:  strings.Join(parts, "\n\n"),
		Pages: pages,
	}
}
