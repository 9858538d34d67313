package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type articleExtractor struct {
	client *http.Client
	logger logger.Logger
}

// Extract fetches the page and strips boilerplate, keeping the main article
// body. Returns ErrNoContent when nothing survives the extraction.
func (e *articleExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch article: status %d", resp.StatusCode)
	}

	opts := trafilatura.Options{EnableFallback: true}
	if u, err := url.Parse(ref); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		e.logger.Warn(ctx, "Boilerplate extraction failed for %s: %v", ref, err)
		return nil, ErrNoContent
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, ErrNoContent
	}

	return wrapText(ref, result.Metadata.Title, text), nil
}
