package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/source"
)

// htmlExtractor is the best-effort fallback: paragraph-tag text only.
type htmlExtractor struct {
	client *http.Client
	logger logger.Logger
}

func (e *htmlExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	var body io.ReadCloser

	if source.IsHTTP(ref) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := e.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch html: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch html: status %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(ref)
		if err != nil {
			return nil, fmt.Errorf("open html file: %w", err)
		}
		body = f
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	if len(parts) == 0 {
		return nil, ErrNoContent
	}

	return wrapText(ref, "", strings.Join(parts, " ")), nil
}
