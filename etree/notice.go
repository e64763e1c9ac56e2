// Package etree reads Cellar XML notices using github.com/beevik/etree.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/eurlex"
)

// Notice element paths.
const (
	titlePath      = "//EXPRESSION_TITLE/VALUE"
	identifierPath = "//SAMEAS/URI/IDENTIFIER"
)

// Ensure NoticeParser implements eurlex.NoticeParser at compile time.
var _ eurlex.NoticeParser = (*NoticeParser)(nil)

// NoticeParser extracts metadata from tree and object notices.
type NoticeParser struct{}

// NewNoticeParser creates a new NoticeParser.
func NewNoticeParser() *NoticeParser {
	return &NoticeParser{}
}

// Title returns the first non-empty expression title.
func (p *NoticeParser) Title(body []byte) (string, error) {
	doc, err := readNotice(body)
	if err != nil {
		return "", err
	}
	for _, el := range doc.FindElements(titlePath) {
		if title := strings.TrimSpace(el.Text()); title != "" {
			return title, nil
		}
	}
	return eurlex.NotFound, nil
}

// Identifiers returns the SAMEAS identifiers in document order without
// duplicates.
func (p *NoticeParser) Identifiers(body []byte) ([]string, error) {
	doc, err := readNotice(body)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	ids := []string{}
	for _, el := range doc.FindElements(identifierPath) {
		id := strings.TrimSpace(el.Text())
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func readNotice(body []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, eurlex.Errorf(eurlex.EINVALID, "parsing notice XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, eurlex.Errorf(eurlex.EINVALID, "empty notice XML")
	}
	return doc, nil
}
