package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

func (p *implProcessor) ProcessFile(ctx context.Context, path string, ocr bool) error {
	refs, err := ReadRefs(path)
	if err != nil {
		return err
	}

	p.logger.Info(ctx, "Loaded %d references from %s", len(refs), path)
	return p.ProcessRefs(ctx, refs, ocr)
}

// ReadRefs reads a CSV reference list. When a header row contains a "url"
// column (case-insensitive) that column is used; otherwise every first
// field is taken as a reference.
func ReadRefs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse reference list: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := 0
	start := 0
	for i, field := range records[0] {
		if strings.EqualFold(strings.TrimSpace(field), "url") {
			col = i
			start = 1
			break
		}
	}

	var refs []string
	for _, rec := range records[start:] {
		if col < len(rec) {
			if ref := strings.TrimSpace(rec[col]); ref != "" {
				refs = append(refs, ref)
			}
		}
	}
	return refs, nil
}
