package session

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// ExportDocx writes the stored dialogue as a styled transcript document.
func (s *Session) ExportDocx(title, outputPath string) error {
	s.mu.Lock()
	dlg := s.dlg
	s.mu.Unlock()

	if dlg == nil {
		return ErrNoDialogue
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	titleRun := doc.AddParagraph("").AddText(title)
	titleRun.Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range dlg.Lines {
		p := doc.AddParagraph("")
		p.AddText(line.Speaker + ":").Font(fontName).Size(fontSize).Color("000000").Bold(true)
		p.AddText(" " + strings.TrimSpace(line.Text)).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
