package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type pdfExtractor struct {
	logger logger.Logger
}

func (e *pdfExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	text, err := extractPDFText(ref)
	if err != nil {
		return nil, err
	}
	return wrapText(ref, "", text), nil
}

type pdfRemoteExtractor struct {
	client *http.Client
	logger logger.Logger
}

func (e *pdfRemoteExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	path, cleanup, err := downloadScratch(ctx, e.client, ref, "docucast-*.pdf")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	text, err := extractPDFText(path)
	if err != nil {
		return nil, err
	}
	return wrapText(ref, "", text), nil
}

// extractPDFText concatenates page-level text. Pages yielding no text
// contribute an empty string, never a failure.
func extractPDFText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		sb.WriteString(pageText(pdfCtx, pageNr))
	}
	return sb.String(), nil
}

func pageText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// pdfLiteralRe matches PDF string literals: (text here)
var pdfLiteralRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream pulls text-showing operators (Tj, TJ, ')
// out of a raw PDF content stream.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFLiteral(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFLiteral(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		}
	}

	return normalizeSpace(sb.String())
}

// decodePDFLiteral handles the basic PDF string escape sequences.
func decodePDFLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

func normalizeSpace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else if unicode.IsPrint(r) {
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
