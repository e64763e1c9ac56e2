package eurlex

// TextExtractor converts a document body into plain text.
type TextExtractor interface {
	// ExtractText returns the readable text of the document.
	ExtractText(body []byte) (string, error)
}

// LinkExtractor finds the constituent document links on a multiple-choice
// (HTTP 300) page.
type LinkExtractor interface {
	// ExtractLinks returns absolute document URLs in page order, with
	// relative hrefs resolved against baseURL.
	ExtractLinks(body []byte, baseURL string) ([]string, error)
}

// NoticeParser reads metadata from XML notices.
type NoticeParser interface {
	// Title returns the first expression title of a tree notice,
	// or NotFound when there is none.
	Title(body []byte) (string, error)

	// Identifiers returns every equivalent identifier listed in an
	// object notice, in document order.
	Identifiers(body []byte) ([]string, error)
}
