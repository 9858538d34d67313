package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/source"
)

func TestRegistryCoversAllKinds(t *testing.T) {
	reg := New(&fakeTranscripts{}, &fakeOCR{}, []string{"fr", "en"}, logger.New("error"))

	kinds := []source.Kind{
		source.KindVideo,
		source.KindWebArticle,
		source.KindGenericHTML,
		source.KindPDFLocal,
		source.KindPDFRemote,
		source.KindPDFLocalOCR,
		source.KindPDFRemoteOCR,
		source.KindNotebookLocal,
		source.KindNotebookRemote,
		source.KindPlainText,
	}

	for _, k := range kinds {
		ext, err := reg.Get(k)
		require.NoError(t, err, string(k))
		assert.NotNil(t, ext, string(k))
	}

	_, err := reg.Get(source.Kind("unknown"))
	assert.Error(t, err)
}

func TestHTMLExtractParagraphs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<nav>menu</nav>
			<p>First paragraph.</p>
			<div>not a paragraph</div>
			<p>Second paragraph.</p>
		</body></html>`))
	}))
	defer server.Close()

	ext := &htmlExtractor{client: &http.Client{Timeout: 5 * time.Second}, logger: logger.New("error")}

	doc, err := ext.Extract(context.Background(), server.URL+"/page")
	require.NoError(t, err)
	assert.Equal(t, "First paragraph. Second paragraph.", doc.Text)
}

func TestHTMLExtractNoParagraphs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div>nothing here</div></body></html>`))
	}))
	defer server.Close()

	ext := &htmlExtractor{client: &http.Client{Timeout: 5 * time.Second}, logger: logger.New("error")}

	_, err := ext.Extract(context.Background(), server.URL+"/page")
	assert.ErrorIs(t, err, ErrNoContent)
}
