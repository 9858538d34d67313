// Package source classifies an input reference (URL or local path)
// into the extraction strategy that should handle it.
package source

import "strings"

// Kind identifies the extraction strategy for a reference.
type Kind string

const (
	KindVideo          Kind = "video"
	KindWebArticle     Kind = "web-article"
	KindPDFLocal       Kind = "pdf-local"
	KindPDFRemote      Kind = "pdf-remote"
	KindPDFLocalOCR    Kind = "pdf-local-ocr"
	KindPDFRemoteOCR   Kind = "pdf-remote-ocr"
	KindNotebookLocal  Kind = "notebook-local"
	KindNotebookRemote Kind = "notebook-remote"
	KindPlainText      Kind = "plain-text"
	KindGenericHTML    Kind = "generic-html"
)

// Classify maps a reference to a Kind. Pure string heuristics, no I/O.
// The rule order is a deliberate tie-break policy: video-host markers win
// over the .pdf suffix, remote wins over local, local text and markdown
// files are read as-is, and anything else that looks like a URL falls
// back to article extraction.
func Classify(ref string, ocr bool) Kind {
	switch {
	case strings.Contains(ref, "youtube.com") || strings.Contains(ref, "youtu.be"):
		return KindVideo
	case strings.HasSuffix(ref, ".pdf") && isHTTP(ref):
		if ocr {
			return KindPDFRemoteOCR
		}
		return KindPDFRemote
	case strings.HasSuffix(ref, ".pdf"):
		if ocr {
			return KindPDFLocalOCR
		}
		return KindPDFLocal
	case strings.HasSuffix(ref, ".ipynb") && isHTTP(ref):
		return KindNotebookRemote
	case strings.HasSuffix(ref, ".ipynb"):
		return KindNotebookLocal
	case isPlainText(ref) && !isHTTP(ref):
		return KindPlainText
	case isHTTP(ref):
		return KindWebArticle
	default:
		return KindGenericHTML
	}
}

func isPlainText(ref string) bool {
	for _, suffix := range []string{".txt", ".md", ".mmd"} {
		if strings.HasSuffix(strings.ToLower(ref), suffix) {
			return true
		}
	}
	return false
}

// IsHTTP reports whether the reference carries an HTTP(S) scheme.
func IsHTTP(ref string) bool {
	return isHTTP(ref)
}

func isHTTP(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
