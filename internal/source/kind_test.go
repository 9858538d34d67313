package source

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		ocr  bool
		want Kind
	}{
		{"youtube watch url", "https://www.youtube.com/watch?v=abc123", false, KindVideo},
		{"youtu.be short url", "https://youtu.be/abc123", false, KindVideo},
		{"youtube wins over pdf suffix", "https://youtube.com/doc.pdf", false, KindVideo},
		{"remote pdf", "https://example.com/paper.pdf", false, KindPDFRemote},
		{"remote pdf ocr", "https://example.com/paper.pdf", true, KindPDFRemoteOCR},
		{"local pdf", "/tmp/paper.pdf", false, KindPDFLocal},
		{"local pdf ocr", "paper.pdf", true, KindPDFLocalOCR},
		{"remote notebook", "https://example.com/nb.ipynb", false, KindNotebookRemote},
		{"remote notebook ignores ocr", "https://example.com/nb.ipynb", true, KindNotebookRemote},
		{"local notebook", "analysis.ipynb", false, KindNotebookLocal},
		{"plain url", "https://example.com/article", false, KindWebArticle},
		{"plain url ignores ocr", "https://example.com/article", true, KindWebArticle},
		{"http url", "http://example.com/article", false, KindWebArticle},
		{"local txt", "/tmp/notes.txt", false, KindPlainText},
		{"local md", "README.md", false, KindPlainText},
		{"local mmd", "paper.MMD", false, KindPlainText},
		{"remote md is an article", "https://example.com/README.md", false, KindWebArticle},
		{"fallback", "some-local-file.html", false, KindGenericHTML},
		{"empty string", "", false, KindGenericHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ref, tt.ocr); got != tt.want {
				t.Errorf("Classify(%q, %v) = %v, want %v", tt.ref, tt.ocr, got, tt.want)
			}
		})
	}
}

func TestIsHTTP(t *testing.T) {
	if !IsHTTP("https://example.com") || !IsHTTP("http://example.com") {
		t.Error("expected http(s) references to be detected")
	}
	if IsHTTP("ftp://example.com") || IsHTTP("/tmp/file.pdf") {
		t.Error("expected non-http references to be rejected")
	}
}
