package eurlex

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// NoticeKind selects the granularity of an XML notice.
type NoticeKind string

// Supported notice kinds.
const (
	NoticeObject NoticeKind = "object"
	NoticeTree   NoticeKind = "tree"
	NoticeBranch NoticeKind = "branch"
)

// ParseNoticeKind converts a string into a NoticeKind.
func ParseNoticeKind(s string) (NoticeKind, error) {
	k := NoticeKind(strings.ToLower(strings.TrimSpace(s)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate returns EINVALID if the notice kind is not supported.
func (k NoticeKind) Validate() error {
	switch k {
	case NoticeObject, NoticeTree, NoticeBranch:
		return nil
	}
	return Errorf(EINVALID, "%q is invalid - valid notice kinds are object, tree, branch", string(k))
}

// Accept returns the Accept header value requesting this notice kind.
func (k NoticeKind) Accept() string {
	return "application/xml;notice=" + string(k)
}

// LanguageNeutral reports whether the notice ignores language negotiation.
// Object notices describe the work itself and are the same in every language.
func (k NoticeKind) LanguageNeutral() bool {
	return k == NoticeObject
}

// MaxLanguages is the number of languages taken into Accept-Language.
const MaxLanguages = 3

// languageWeights are the quality values for the second and third language.
var languageWeights = []string{"", ";q=0.8", ";q=0.7"}

// DefaultLanguages returns the languages used when a caller specifies none.
func DefaultLanguages() []string {
	return []string{"en"}
}

// AcceptLanguage builds an Accept-Language header from up to MaxLanguages
// languages in order of preference. Further languages are ignored.
func AcceptLanguage(langs []string) string {
	parts := make([]string, 0, MaxLanguages)
	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		if len(parts) == MaxLanguages {
			break
		}
		parts = append(parts, lang+languageWeights[len(parts)])
	}
	return strings.Join(parts, ", ")
}

// TextAccept is the Accept header used to retrieve document content.
// Formats are listed in order of preference.
var TextAccept = strings.Join([]string{
	"text/html",
	"text/html;type=simplified",
	"text/plain",
	"application/xhtml+xml",
	"application/xhtml+xml;type=simplified",
	"application/pdf",
	"application/pdf;type=pdf1x",
	"application/pdf;type=pdfa1a",
	"application/pdf;type=pdfx",
	"application/pdf;type=pdfa1b",
	"application/msword",
}, ", ")

// Notice is a downloaded XML notice.
type Notice struct {
	// URL is the final URL after redirects.
	URL         string
	Filename    string
	ContentType string
	Body        []byte
}

// NoticeFilename returns the last path segment of the notice URL.
func NoticeFilename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse notice URL: %w", err)
	}
	name := path.Base(strings.TrimSuffix(u.Path, "/"))
	if name == "" || name == "." || name == "/" {
		return "", Errorf(EINVALID, "notice URL %q has no path segment", rawURL)
	}
	return name, nil
}

// NoticeWriter persists downloaded notices.
type NoticeWriter interface {
	// WriteNotice stores the notice body and returns where it was written.
	WriteNotice(ctx context.Context, n *Notice) (string, error)
}
