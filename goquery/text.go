// Package goquery extracts text and links from Cellar HTML using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/eurlex"
)

// Ensure TextExtractor implements eurlex.TextExtractor at compile time.
var _ eurlex.TextExtractor = (*TextExtractor)(nil)

// nonContent lists elements whose text is never part of the document.
const nonContent = "script, style, noscript, template, head"

// TextExtractor returns the visible body text of HTML and XHTML documents.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the body text with blank lines collapsed.
func (e *TextExtractor) ExtractText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", eurlex.Errorf(eurlex.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContent).Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	return normalizeLines(sel.Text()), nil
}

// normalizeLines trims every line and keeps at most one blank line
// between paragraphs.
func normalizeLines(text string) string {
	var b strings.Builder
	blank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = b.Len() > 0
			continue
		}
		if blank {
			b.WriteString("\n")
			blank = false
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}
