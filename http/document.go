package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/eurlex"
)

// Ensure DocumentService implements eurlex.DocumentService at compile time.
var _ eurlex.DocumentService = (*DocumentService)(nil)

// DocumentService retrieves notices and document text from the Cellar
// resource API using content negotiation.
type DocumentService struct {
	// Extractors for 200 responses by content type.
	HTML eurlex.TextExtractor
	PDF  eurlex.TextExtractor

	// Links lists the documents of a 300 Multiple Choices response.
	Links eurlex.LinkExtractor

	// Notices reads titles and identifiers from XML notices.
	Notices eurlex.NoticeParser

	baseURL string
	client  *client
}

// NewDocumentService creates a new DocumentService.
// The extractor and parser fields must be set before use.
func NewDocumentService(opts ...Option) *DocumentService {
	o := newOptions(opts)
	return &DocumentService{
		baseURL: o.baseURL,
		client:  newClient(o),
	}
}

// FetchNotice checks the notice with a HEAD request and downloads it from
// the final URL once the HEAD answers 200.
func (s *DocumentService) FetchNotice(ctx context.Context, ref string, kind eurlex.NoticeKind, langs []string) (*eurlex.Notice, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	target, err := eurlex.NormalizeReference(s.baseURL, ref)
	if err != nil {
		return nil, err
	}

	header := http.Header{"Accept": {kind.Accept()}}
	if !kind.LanguageNeutral() {
		header.Set("Accept-Language", eurlex.AcceptLanguage(languagesOrDefault(langs)))
	}

	head, err := s.send(ctx, http.MethodHead, target, header)
	if err != nil {
		return nil, err
	}
	head.Body.Close()
	if head.StatusCode != http.StatusOK {
		return nil, eurlex.Errorf(eurlex.ERETRIEVAL, "notice %s returned HTTP %d", target, head.StatusCode)
	}

	resp, err := s.send(ctx, http.MethodGet, head.Request.URL.String(), header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eurlex.Errorf(eurlex.ERETRIEVAL, "reading notice %s: %v", target, err)
	}

	final := resp.Request.URL.String()
	filename, _ := eurlex.NoticeFilename(final)
	return &eurlex.Notice{
		URL:         final,
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// FetchTitle reads the expression title from a tree notice.
func (s *DocumentService) FetchTitle(ctx context.Context, ref string, langs []string) (string, error) {
	n, err := s.FetchNotice(ctx, ref, eurlex.NoticeTree, langs)
	if err != nil {
		return "", err
	}
	return s.Notices.Title(n.Body)
}

// FetchIdentifiers reads the equivalent identifiers from an object notice.
func (s *DocumentService) FetchIdentifiers(ctx context.Context, ref string) ([]string, error) {
	n, err := s.FetchNotice(ctx, ref, eurlex.NoticeObject, nil)
	if err != nil {
		return nil, err
	}
	ids, err := s.Notices.Identifiers(n.Body)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []string{eurlex.NotFound}, nil
	}
	return ids, nil
}

// FetchText retrieves the document in the first acceptable format.
// A 300 response is expanded by fetching every listed document in turn;
// parts that cannot be retrieved are replaced by eurlex.NotFound.
func (s *DocumentService) FetchText(ctx context.Context, ref string, opts eurlex.TextOptions) (*eurlex.ExtractionResult, error) {
	target, err := eurlex.NormalizeReference(s.baseURL, ref)
	if err != nil {
		return nil, err
	}

	header := http.Header{
		"Accept":          {eurlex.TextAccept},
		"Accept-Language": {eurlex.AcceptLanguage(languagesOrDefault(opts.Languages))},
	}

	resp, err := s.send(ctx, http.MethodGet, target, header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result *eurlex.ExtractionResult
	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, eurlex.Errorf(eurlex.ERETRIEVAL, "reading %s: %v", target, err)
		}
		text, err := s.extract(resp.Header.Get("Content-Type"), body)
		if err != nil {
			return nil, err
		}
		result = &eurlex.ExtractionResult{Text: text, Parts: []string{text}}

	case http.StatusMultipleChoices:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, eurlex.Errorf(eurlex.ERETRIEVAL, "reading %s: %v", target, err)
		}
		result, err = s.fetchParts(ctx, body, resp.Request.URL.String(), header)
		if err != nil {
			return nil, err
		}

	case http.StatusNotAcceptable:
		return &eurlex.ExtractionResult{Text: eurlex.MissingDocument}, nil

	default:
		return nil, statusError(resp)
	}

	if !opts.IncludeBreaks {
		for i, part := range result.Parts {
			result.Parts[i] = eurlex.StripBreaks(part)
		}
		result.Text = eurlex.StripBreaks(result.Text)
	}
	return result, nil
}

// fetchParts downloads every document linked from a multiple-choice page.
func (s *DocumentService) fetchParts(ctx context.Context, body []byte, pageURL string, header http.Header) (*eurlex.ExtractionResult, error) {
	if s.Links == nil {
		return nil, eurlex.Errorf(eurlex.EINTERNAL, "no link extractor configured")
	}
	links, err := s.Links.ExtractLinks(body, pageURL)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return &eurlex.ExtractionResult{Text: eurlex.MissingDocument}, nil
	}

	parts := make([]string, 0, len(links))
	for _, link := range links {
		text, err := s.fetchPart(ctx, link, header)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			text = eurlex.NotFound
		}
		parts = append(parts, text)
	}
	return &eurlex.ExtractionResult{Text: eurlex.JoinParts(parts), Parts: parts}, nil
}

func (s *DocumentService) fetchPart(ctx context.Context, link string, header http.Header) (string, error) {
	resp, err := s.send(ctx, http.MethodGet, link, header)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eurlex.Errorf(eurlex.ERETRIEVAL, "reading %s: %v", link, err)
	}
	return s.extract(resp.Header.Get("Content-Type"), body)
}

// extract dispatches the body to the extractor for its content type.
func (s *DocumentService) extract(contentType string, body []byte) (string, error) {
	switch eurlex.ClassifyContentType(contentType) {
	case eurlex.ContentHTML:
		if s.HTML == nil {
			return "", eurlex.Errorf(eurlex.EINTERNAL, "no HTML extractor configured")
		}
		return s.HTML.ExtractText(body)
	case eurlex.ContentText:
		return string(body), nil
	case eurlex.ContentPDF:
		if s.PDF == nil {
			return "", eurlex.Errorf(eurlex.EINTERNAL, "no PDF extractor configured")
		}
		return s.PDF.ExtractText(body)
	case eurlex.ContentWord:
		return eurlex.UnsupportedDocument, nil
	}
	return "", eurlex.Errorf(eurlex.EUNSUPPORTED, "unsupported content type %q", contentType)
}

func (s *DocumentService) send(ctx context.Context, method, target string, header http.Header) (*http.Response, error) {
	req, err := newRequest(ctx, method, target, nil, header)
	if err != nil {
		return nil, err
	}
	return s.client.do(req)
}

func languagesOrDefault(langs []string) []string {
	if len(langs) == 0 {
		return eurlex.DefaultLanguages()
	}
	return langs
}
