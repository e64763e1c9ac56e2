package mock

import "github.com/fwojciec/eurlex"

var (
	_ eurlex.TextExtractor = (*TextExtractor)(nil)
	_ eurlex.LinkExtractor = (*LinkExtractor)(nil)
	_ eurlex.NoticeParser  = (*NoticeParser)(nil)
)

// TextExtractor is a mock implementation of eurlex.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(body []byte) (string, error)
}

func (e *TextExtractor) ExtractText(body []byte) (string, error) {
	return e.ExtractTextFn(body)
}

// LinkExtractor is a mock implementation of eurlex.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(body []byte, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(body []byte, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(body, baseURL)
}

// NoticeParser is a mock implementation of eurlex.NoticeParser.
type NoticeParser struct {
	TitleFn       func(body []byte) (string, error)
	IdentifiersFn func(body []byte) ([]string, error)
}

func (p *NoticeParser) Title(body []byte) (string, error) {
	return p.TitleFn(body)
}

func (p *NoticeParser) Identifiers(body []byte) ([]string, error) {
	return p.IdentifiersFn(body)
}
