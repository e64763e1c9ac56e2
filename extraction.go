package eurlex

import (
	"mime"
	"strings"
)

// Sentinel strings placed in extracted text and metadata.
const (
	// PageBreak separates pages of a PDF document.
	PageBreak = "---pagebreak---"

	// DocumentBreak separates the parts of a multi-document response.
	DocumentBreak = "---documentbreak---"

	// MissingDocument is returned when no representation satisfies the
	// requested languages and formats.
	MissingDocument = "missing_document"

	// UnsupportedDocument is returned for formats that have no extractor.
	UnsupportedDocument = "unsupported_format"

	// NotFound marks absent metadata and parts that failed to download.
	NotFound = "NaN"
)

// ExtractionResult is the text extracted from a document. Parts holds one
// entry per constituent document when the resource resolved to several.
type ExtractionResult struct {
	Text  string
	Parts []string
}

// Multi reports whether the result was assembled from several documents.
func (r *ExtractionResult) Multi() bool {
	return len(r.Parts) > 1
}

// TextOptions controls document text retrieval.
type TextOptions struct {
	// Languages in order of preference. At most MaxLanguages are used.
	Languages []string

	// IncludeBreaks keeps PageBreak and DocumentBreak markers in the text.
	IncludeBreaks bool
}

// StripBreaks replaces page break markers with a newline and document break
// markers with a blank line, so neighbouring pages and documents stay apart.
func StripBreaks(text string) string {
	return breakReplacer.Replace(text)
}

var breakReplacer = strings.NewReplacer(PageBreak, "\n", DocumentBreak, "\n\n")

// JoinParts concatenates the parts of a multi-document response.
func JoinParts(parts []string) string {
	return strings.Join(parts, DocumentBreak)
}

// ContentKind is a coarse classification of a response media type.
type ContentKind int

// ContentKind values.
const (
	ContentUnknown ContentKind = iota
	ContentHTML
	ContentText
	ContentPDF
	ContentWord
)

// String returns a short name for the kind.
func (k ContentKind) String() string {
	switch k {
	case ContentHTML:
		return "html"
	case ContentText:
		return "text"
	case ContentPDF:
		return "pdf"
	case ContentWord:
		return "word"
	}
	return "unknown"
}

// ClassifyContentType maps a Content-Type header onto a ContentKind.
// Media type parameters are ignored.
func ClassifyContentType(contentType string) ContentKind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
	}
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "text/html", "application/xhtml+xml":
		return ContentHTML
	case "text/plain":
		return ContentText
	case "application/pdf":
		return ContentPDF
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return ContentWord
	}
	return ContentUnknown
}
