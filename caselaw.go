package eurlex

import "strings"

// CaseMetadata holds the fields encoded in a case-law expression title.
// Absent fields are set to NotFound.
type CaseMetadata struct {
	Title      string `json:"title"`
	Parties    string `json:"parties"`
	CaseNumber string `json:"caseNumber"`
}

// ParseCaseTitle splits a Cellar case-law title into its components.
// Titles are '#'-separated, for example:
//
//	Judgment of the Court of 6 October 2015.#Maximillian Schrems v Data Protection Commissioner.#Case C-362/14.
func ParseCaseTitle(title string) CaseMetadata {
	meta := CaseMetadata{Title: NotFound, Parties: NotFound, CaseNumber: NotFound}

	var segments []string
	for _, s := range strings.Split(title, "#") {
		s = strings.TrimSpace(s)
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 || title == NotFound {
		return meta
	}

	meta.Title = segments[0]
	for _, s := range segments[1:] {
		switch {
		case meta.CaseNumber == NotFound && isCaseNumber(s):
			meta.CaseNumber = strings.TrimSuffix(s, ".")
		case meta.Parties == NotFound && strings.Contains(s, " v "):
			meta.Parties = strings.TrimSuffix(s, ".")
		}
	}
	if meta.Parties == NotFound && len(segments) > 1 && !isCaseNumber(segments[1]) {
		meta.Parties = strings.TrimSuffix(segments[1], ".")
	}
	return meta
}

func isCaseNumber(s string) bool {
	return strings.HasPrefix(s, "Case ") || strings.HasPrefix(s, "Joined Cases ") || strings.HasPrefix(s, "Cases ")
}
