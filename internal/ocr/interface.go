package ocr

import "context"

// Page is one OCR-processed page with its markdown rendering.
type Page struct {
	Index    int    `json:"index"`
	Markdown string `json:"markdown"`
}

// Result is the structured OCR response for a whole document.
type Result struct {
	Pages []Page `json:"pages"`
}

// Service runs optical character recognition on PDF bytes.
// The flow is upload → short-lived signed URL → process.
type Service interface {
	Process(ctx context.Context, pdf []byte, filename string) (*Result, error)
}
