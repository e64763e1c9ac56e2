package eurlex

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the canonical Cellar host.
const DefaultBaseURL = "http://publications.europa.eu"

// Resource path segments recognised in document URLs.
const (
	CelexPath  = "/resource/celex/"
	CellarPath = "/resource/cellar/"
)

// NormalizeReference turns a document reference into a resource URL.
// URLs under baseURL or carrying a /resource/ segment pass through unchanged.
// A bare cellar UUID maps to baseURL/resource/cellar/<uuid>; anything else is
// treated as a CELEX number and maps to baseURL/resource/celex/<celex>.
func NormalizeReference(baseURL, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", Errorf(EINVALID, "document reference required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if baseURL != "" && strings.HasPrefix(ref, baseURL) {
		return ref, nil
	}

	if isHTTPURL(ref) {
		u, err := url.Parse(ref)
		if err != nil {
			return "", Errorf(EINVALID, "invalid document URL %q: %v", ref, err)
		}
		if !strings.Contains(u.Path, "/resource/") {
			return "", Errorf(EINVALID, "unrecognised document URL %q", ref)
		}
		return ref, nil
	}

	if strings.ContainsAny(ref, " \t\r\n/?#") {
		return "", Errorf(EINVALID, "invalid document identifier %q", ref)
	}

	if id, err := uuid.Parse(ref); err == nil {
		return baseURL + CellarPath + id.String(), nil
	}

	return baseURL + CelexPath + ref, nil
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
