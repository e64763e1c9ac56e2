// Package pdf extracts text from PDF documents using github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"strings"

	"github.com/fwojciec/eurlex"
	"github.com/ledongthuc/pdf"
)

// Ensure TextExtractor implements eurlex.TextExtractor at compile time.
var _ eurlex.TextExtractor = (*TextExtractor)(nil)

// TextExtractor returns the plain text of a PDF, with eurlex.PageBreak
// between consecutive pages.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText reads every page in order. Pages without content or whose
// text cannot be decoded contribute an empty string.
func (e *TextExtractor) ExtractText(body []byte) (text string, err error) {
	// The PDF reader panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", eurlex.Errorf(eurlex.EINVALID, "malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", eurlex.Errorf(eurlex.EINVALID, "open PDF: %v", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", eurlex.Errorf(eurlex.EINVALID, "PDF has no pages")
	}
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(content))
	}

	return strings.Join(pages, eurlex.PageBreak), nil
}

