package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

// textExtractor reads local .txt/.md/.mmd files verbatim.
type textExtractor struct {
	logger logger.Logger
}

func (e *textExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}

	title := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	return wrapText(ref, title, text), nil
}
