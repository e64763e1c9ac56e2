package eurlex

import "context"

// DocumentService retrieves notices, metadata and text for Cellar resources.
// Every method accepts a CELEX number, a cellar UUID or a full resource URL.
type DocumentService interface {
	// FetchNotice downloads an XML notice of the given kind.
	// Languages are ignored for language-neutral kinds.
	FetchNotice(ctx context.Context, ref string, kind NoticeKind, langs []string) (*Notice, error)

	// FetchTitle returns the expression title in the first available
	// language, or NotFound when the notice carries none.
	FetchTitle(ctx context.Context, ref string, langs []string) (string, error)

	// FetchIdentifiers returns the equivalent identifiers of the work.
	// Returns a single NotFound entry when the notice lists none.
	FetchIdentifiers(ctx context.Context, ref string) ([]string, error)

	// FetchText returns the text of the resource in the best available
	// language and format. Returns MissingDocument as text when nothing
	// matches the requested languages.
	FetchText(ctx context.Context, ref string, opts TextOptions) (*ExtractionResult, error)
}
