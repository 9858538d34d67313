package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/ocr"
)

type ocrExtractor struct {
	ocr    ocr.Service
	logger logger.Logger
}

func (e *ocrExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	result, err := e.ocr.Process(ctx, data, filepath.Base(ref))
	if err != nil {
		return nil, err
	}
	if len(result.Pages) == 0 {
		return nil, ErrNoContent
	}

	return wrapPages(ref, result.Pages), nil
}

type ocrRemoteExtractor struct {
	ocr    ocr.Service
	client *http.Client
	logger logger.Logger
}

// Extract downloads the PDF to a scratch file (removed in every outcome)
// before OCR. An HTTP download failure and any other failure are reported
// separately; both resolve to a skipped document.
func (e *ocrRemoteExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	path, cleanup, err := downloadScratch(ctx, e.client, ref, "docucast-ocr-*.pdf")
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) {
			e.logger.Error(ctx, "HTTP error downloading %s: status %d", ref, statusErr.status)
		} else {
			e.logger.Error(ctx, "Unexpected error during OCR extraction of %s: %v", ref, err)
		}
		return nil, ErrNoContent
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Error(ctx, "Unexpected error during OCR extraction of %s: %v", ref, err)
		return nil, ErrNoContent
	}

	result, err := e.ocr.Process(ctx, data, filepath.Base(path))
	if err != nil {
		e.logger.Error(ctx, "Unexpected error during OCR extraction of %s: %v", ref, err)
		return nil, ErrNoContent
	}
	if len(result.Pages) == 0 {
		return nil, ErrNoContent
	}

	return wrapPages(ref, result.Pages), nil
}
