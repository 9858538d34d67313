package batch

import (
	"regexp"
	"strings"
)

var (
	reURL     = regexp.MustCompile(`^https?://`)
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// FormatMarkdown renders extracted text into a lightweight Markdown form.
// Line-oriented: blank lines are dropped; a fully upper-case line of fewer
// than 8 words becomes a level-1 heading; a bare URL becomes a link line;
// everything else passes through, each line followed by a blank line.
func FormatMarkdown(text string) string {
	var sb strings.Builder

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isUpper(line) && len(strings.Fields(line)) < 8:
			sb.WriteString("# " + line + "\n")
		case reURL.MatchString(line):
			sb.WriteString("[Lien](" + line + ")\n")
		default:
			sb.WriteString(line + "\n")
		}
	}

	return sb.String()
}

// isUpper reports whether the line equals its upper-cased form and
// contains at least one cased letter.
func isUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// SanitizeTitle turns an arbitrary title into a filesystem-safe name:
// runs of non-word characters collapse to one underscore.
func SanitizeTitle(title string) string {
	safe := strings.Trim(reNonWord.ReplaceAllString(title, "_"), "_")
	if safe == "" {
		return "document"
	}
	return safe
}
