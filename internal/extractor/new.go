package extractor

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/ocr"
	"github.com/nguyentantai21042004/docucast/internal/source"
	"github.com/nguyentantai21042004/docucast/internal/transcript"
)

// Registry maps a source kind to its extraction strategy.
type Registry struct {
	extractors map[source.Kind]Extractor
}

// New builds the registry with one strategy bound to each source kind.
// languages is the transcript language preference order (first match wins).
func New(transcripts transcript.Service, ocrSvc ocr.Service, languages []string, log logger.Logger) *Registry {
	client := &http.Client{Timeout: 60 * time.Second}

	if len(languages) == 0 {
		languages = []string{"en"}
	}

	video := &videoExtractor{transcripts: transcripts, languages: languages, logger: log}
	article := &articleExtractor{client: client, logger: log}
	html := &htmlExtractor{client: client, logger: log}
	pdfLocal := &pdfExtractor{logger: log}
	pdfRemote := &pdfRemoteExtractor{client: client, logger: log}
	ocrLocal := &ocrExtractor{ocr: ocrSvc, logger: log}
	ocrRemote := &ocrRemoteExtractor{ocr: ocrSvc, client: client, logger: log}
	nbLocal := &notebookExtractor{logger: log}
	nbRemote := &notebookRemoteExtractor{client: client, logger: log}
	text := &textExtractor{logger: log}

	return &Registry{
		extractors: map[source.Kind]Extractor{
			source.KindVideo:          video,
			source.KindWebArticle:     article,
			source.KindGenericHTML:    html,
			source.KindPDFLocal:       pdfLocal,
			source.KindPDFRemote:      pdfRemote,
			source.KindPDFLocalOCR:    ocrLocal,
			source.KindPDFRemoteOCR:   ocrRemote,
			source.KindNotebookLocal:  nbLocal,
			source.KindNotebookRemote: nbRemote,
			source.KindPlainText:      text,
		},
	}
}

// Get returns the extractor bound to the given kind.
func (r *Registry) Get(kind source.Kind) (Extractor, error) {
	ext, ok := r.extractors[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported source kind: %s", kind)
	}
	return ext, nil
}
