// Package htmltomarkdown renders Cellar HTML documents as Markdown using
// github.com/JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"bytes"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/eurlex"
)

// Ensure TextExtractor implements eurlex.TextExtractor at compile time.
var _ eurlex.TextExtractor = (*TextExtractor)(nil)

// chrome lists elements that are never part of the act itself.
const chrome = "head, script, style, noscript, nav, header, footer, .linkToTop, .arrow"

// headings maps Official Journal paragraph classes to heading levels.
// Both the current (oj-) and the pre-2014 markup are recognised.
var headings = []struct {
	selector string
	level    int
}{
	{"p.oj-doc-ti, p.doc-ti", 1},
	{"p.oj-ti-section-1, p.ti-section-1", 2},
	{"p.oj-ti-art, p.ti-art", 3},
	{"p.oj-sti-art, p.sti-art", 4},
}

// TextExtractor converts HTML documents to Markdown, keeping headings,
// lists and the tables found in annexes.
type TextExtractor struct {
	conv *converter.Converter
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &TextExtractor{conv: conv}
}

// ExtractText returns the Markdown representation of the document body.
// Article and section titles become headings.
func (e *TextExtractor) ExtractText(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", eurlex.Errorf(eurlex.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", eurlex.Errorf(eurlex.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(chrome).Remove()
	for _, h := range headings {
		doc.Find(h.selector).Each(func(_ int, s *goquery.Selection) {
			inner, err := s.Html()
			if err != nil {
				return
			}
			s.ReplaceWithHtml(fmt.Sprintf("<h%d>%s</h%d>", h.level, inner, h.level))
		})
	}

	html, err := doc.Find("body").Html()
	if err != nil {
		return "", eurlex.Errorf(eurlex.EINVALID, "failed to render HTML body: %v", err)
	}

	result, err := e.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
