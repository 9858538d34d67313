package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// downloadScratch fetches a remote file into a uniquely named scratch file.
// The caller must invoke cleanup regardless of outcome.
func downloadScratch(ctx context.Context, client *http.Client, ref, pattern string) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return "", nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("download %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, &httpStatusError{status: resp.StatusCode, ref: ref}
	}

	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("create scratch file: %w", err)
	}

	cleanup := func() { os.Remove(f.Name()) }

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close scratch file: %w", err)
	}

	return f.Name(), cleanup, nil
}

// httpStatusError distinguishes HTTP-level download failures from other
// extraction errors; the remote OCR path reports the two separately.
type httpStatusError struct {
	status int
	ref    string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("download %s: status %d", e.ref, e.status)
}
