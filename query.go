package eurlex

import (
	"strconv"
	"strings"
)

// QueryOptions selects the resource family, filters and projected variables
// of a Cellar SPARQL query. Use NewQueryOptions for the usual defaults.
type QueryOptions struct {
	ResourceType ResourceType `json:"resourceType"`

	// ManualType is the resource-type code used with ResourceManual.
	ManualType string `json:"manualType,omitempty"`

	// Directory restricts results to a directory code and its narrower codes.
	Directory string `json:"directory,omitempty"`

	// Sector restricts results to a CELEX sector (0-9).
	Sector *int `json:"sector,omitempty"`

	IncludeCorrigenda      bool `json:"includeCorrigenda"`
	IncludeCelex           bool `json:"includeCelex"`
	IncludeLegalBasis      bool `json:"includeLegalBasis"`
	IncludeDate            bool `json:"includeDate"`
	IncludeDateForce       bool `json:"includeDateForce"`
	IncludeDateEndValid    bool `json:"includeDateEndValid"`
	IncludeDateTransposed  bool `json:"includeDateTransposed"`
	IncludeDateLodged      bool `json:"includeDateLodged"`
	IncludeForce           bool `json:"includeForce"`
	IncludeEurovoc         bool `json:"includeEurovoc"`
	IncludeAuthor          bool `json:"includeAuthor"`
	IncludeCitations       bool `json:"includeCitations"`
	IncludeCourtProcedure  bool `json:"includeCourtProcedure"`
	IncludeECLI            bool `json:"includeEcli"`
	IncludeAdvocateGeneral bool `json:"includeAdvocateGeneral"`
	IncludeJudgeRapporteur bool `json:"includeJudgeRapporteur"`
	IncludeCourtFormation  bool `json:"includeCourtFormation"`
	IncludeScholarship     bool `json:"includeScholarship"`
	IncludeProposal        bool `json:"includeProposal"`
	IncludeDirectory       bool `json:"includeDirectory"`
	IncludeSector          bool `json:"includeSector"`

	// Order sorts results by document date.
	Order bool `json:"order"`

	// Limit caps the number of results. Zero means no limit.
	Limit int `json:"limit,omitempty"`
}

// NewQueryOptions returns options for the resource type with CELEX numbers
// projected and everything else left out.
func NewQueryOptions(rt ResourceType) QueryOptions {
	return QueryOptions{
		ResourceType: rt,
		IncludeCelex: true,
	}
}

// Validate checks the options before any query is built.
// Returns EINVALID for malformed values and ECONFLICT for options that
// cannot be combined with the resource type.
func (o QueryOptions) Validate() error {
	if err := o.ResourceType.Validate(); err != nil {
		return err
	}

	if o.ResourceType == ResourceManual {
		if len(o.ManualType) <= 2 {
			return Errorf(EINVALID, "%q is invalid - please specify a proper type from %s", o.ManualType, strings.TrimSuffix(ResourceTypeBaseURI, "/"))
		}
		if !isIRIToken(o.ManualType) {
			return Errorf(EINVALID, "manual type %q contains characters not allowed in an IRI", o.ManualType)
		}
	}

	switch o.ResourceType {
	case ResourceCaselaw, ResourceManual, ResourceAny:
		if o.IncludeCourtProcedure {
			return Errorf(ECONFLICT, "court procedure is not available for resource type %q", o.ResourceType)
		}
	}

	if o.IncludeDateTransposed && o.ResourceType != ResourceDirective {
		return Errorf(ECONFLICT, "transposition date only available for directives")
	}

	if o.ResourceType == ResourceCaselaw {
		if o.IncludeLegalBasis {
			return Errorf(ECONFLICT, "legal basis variable not compatible with caselaw resource type")
		}
		if o.IncludeForce {
			return Errorf(ECONFLICT, "force variable not compatible with caselaw resource type")
		}
	}

	if o.Directory != "" && !isIRIToken(o.Directory) {
		return Errorf(EINVALID, "directory code %q contains characters not allowed in an IRI", o.Directory)
	}

	if o.Sector != nil && (*o.Sector < 0 || *o.Sector > 9) {
		return Errorf(EINVALID, "sector code must be between 0 and 9, got %d", *o.Sector)
	}

	if o.Limit < 0 {
		return Errorf(EINVALID, "limit must not be negative, got %d", o.Limit)
	}

	return nil
}

// isIRIToken reports whether s can be spliced into an IRI reference.
func isIRIToken(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n<>\"{}|\\^`")
}

// Query is a SPARQL select query kept as ordered fragments.
// String joins the fragments into a single line.
type Query struct {
	Prefixes  []string
	Variables []string
	Patterns  []string
	OrderBy   string
	Limit     int
}

// queryPrefixes are the namespace declarations every query starts with.
var queryPrefixes = []string{
	"PREFIX cdm: <http://publications.europa.eu/ontology/cdm#>",
	"PREFIX annot: <http://publications.europa.eu/ontology/annotation#>",
	"PREFIX skos: <http://www.w3.org/2004/02/skos/core#>",
	"PREFIX dc: <http://purl.org/dc/elements/1.1/>",
	"PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>",
	"PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>",
	"PREFIX owl: <http://www.w3.org/2002/07/owl#>",
}

// Fixed query fragments.
const (
	typePattern       = "?work cdm:work_has_resource-type ?type."
	corrigendaFilter  = "FILTER not exists{?work cdm:work_has_resource-type <" + ResourceTypeBaseURI + "CORRIGENDUM>}"
	doNotIndexFilter  = `FILTER not exists{?work cdm:do_not_index "true"^^<http://www.w3.org/2001/XMLSchema#boolean>}.`
	dateOrder         = "str(?date)"
	directoryFD555URI = "http://publications.europa.eu/resource/authority/fd_555/"
	directoryActURI   = "http://publications.europa.eu/resource/authority/dir-eu-legal-act/"
)

// BuildQuery validates the options and returns the SPARQL query string.
// It performs no I/O.
func BuildQuery(opts QueryOptions) (string, error) {
	q, err := NewQuery(opts)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

// NewQuery validates the options and assembles the query fragments.
func NewQuery(opts QueryOptions) (*Query, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	q := &Query{
		Prefixes:  append([]string(nil), queryPrefixes...),
		Variables: append([]string{"?work", "?type"}, projection(opts)...),
		Limit:     opts.Limit,
	}

	if opts.ResourceType != ResourceAny {
		q.Patterns = append(q.Patterns, typePattern)
	}
	if opts.Directory != "" {
		q.Patterns = append(q.Patterns, directoryFilter(opts.Directory))
	}
	if opts.Sector != nil {
		q.Patterns = append(q.Patterns, sectorFilter(*opts.Sector))
	}
	if f := typeFilter(opts.ResourceType, opts.ManualType); f != "" {
		q.Patterns = append(q.Patterns, f)
	}
	if !opts.IncludeCorrigenda && opts.ResourceType != ResourceCaselaw {
		q.Patterns = append(q.Patterns, corrigendaFilter)
	}
	q.Patterns = append(q.Patterns, optionalClauses(opts)...)
	q.Patterns = append(q.Patterns, doNotIndexFilter)

	if opts.Order {
		q.OrderBy = dateOrder
	}

	return q, nil
}

// String renders the query on a single line.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(q.Prefixes, " "))
	b.WriteString(" select distinct ")
	b.WriteString(strings.Join(q.Variables, " "))
	b.WriteString(" where{ ")
	b.WriteString(strings.Join(q.Patterns, " "))
	b.WriteString(" }")
	if q.OrderBy != "" {
		b.WriteString(" order by ")
		b.WriteString(q.OrderBy)
	}
	if q.Limit > 0 {
		b.WriteString(" limit ")
		b.WriteString(strconv.Itoa(q.Limit))
	}
	return b.String()
}

// projection returns the selected variables in their fixed order.
func projection(o QueryOptions) []string {
	var vars []string
	add := func(on bool, tokens ...string) {
		if on {
			vars = append(vars, tokens...)
		}
	}
	add(o.IncludeCelex, "?celex")
	add(o.IncludeDate, "str(?date)")
	add(o.IncludeDateForce, "str(?dateforce)")
	add(o.IncludeDateEndValid, "str(?dateendvalid)")
	add(o.IncludeDateTransposed, "str(?datetranspos)")
	add(o.IncludeDateLodged, "str(?datelodged)")
	add(o.IncludeLegalBasis, "?lbs", "?lbcelex", "?lbsuffix")
	add(o.IncludeForce, "?force")
	add(o.IncludeEurovoc, "?eurovoc")
	add(o.IncludeCourtProcedure, "?courtprocedure")
	add(o.IncludeECLI, "?ecli")
	add(o.IncludeAuthor, "?author")
	add(o.IncludeCitations, "?citationcelex")
	add(o.IncludeDirectory, "?directory")
	add(o.IncludeSector, "?sector")
	add(o.IncludeAdvocateGeneral, "?ag")
	add(o.IncludeJudgeRapporteur, "?jr")
	add(o.IncludeCourtFormation, "?cf")
	add(o.IncludeScholarship, "?scholarship")
	add(o.IncludeProposal, "?proposal")
	return vars
}

// typeFilter returns the resource-type FILTER, or "" for ResourceAny.
func typeFilter(rt ResourceType, manualType string) string {
	var codes []string
	switch rt {
	case ResourceAny:
		return ""
	case ResourceManual:
		codes = []string{manualType}
	default:
		codes = rt.TypeCodes()
	}

	terms := make([]string, len(codes))
	for i, code := range codes {
		terms[i] = "?type=<" + ResourceTypeURI(code) + ">"
	}
	return "FILTER(" + strings.Join(terms, "||") + ")"
}

// directoryFilter matches the directory code itself or any narrower code.
func directoryFilter(dir string) string {
	return "VALUES (?value) { (<" + directoryFD555URI + dir + ">) (<" + directoryActURI + dir + ">) }" +
		" {?work cdm:resource_legal_is_about_concept_directory-code ?value.}" +
		" UNION" +
		" {?work cdm:resource_legal_is_about_concept_directory-code ?directory. ?value skos:narrower+ ?directory.}"
}

func sectorFilter(sector int) string {
	return "?work cdm:resource_legal_id_sector ?sector. FILTER(str(?sector)='" + strconv.Itoa(sector) + "')"
}

// optionalClauses returns one OPTIONAL block per enabled variable.
// Label-valued results are filtered to English.
func optionalClauses(o QueryOptions) []string {
	var clauses []string
	add := func(on bool, clause string) {
		if on {
			clauses = append(clauses, clause)
		}
	}
	add(o.IncludeCelex, "OPTIONAL{?work cdm:resource_legal_id_celex ?celex.}")
	add(o.IncludeDate, "OPTIONAL{?work cdm:work_date_document ?date.}")
	add(o.IncludeDateForce, "OPTIONAL{?work cdm:resource_legal_date_entry-into-force ?dateforce.}")
	add(o.IncludeDateEndValid, "OPTIONAL{?work cdm:resource_legal_date_end-of-validity ?dateendvalid.}")
	add(o.IncludeDateTransposed, "OPTIONAL{?work cdm:directive_date_transposition ?datetranspos.}")
	add(o.IncludeDateLodged, "OPTIONAL{?work cdm:resource_legal_date_request_opinion ?datelodged.}")
	add(o.IncludeLegalBasis, "OPTIONAL{?work cdm:resource_legal_based_on_resource_legal ?lbs."+
		" ?lbs cdm:resource_legal_id_celex ?lbcelex."+
		" OPTIONAL{?bn owl:annotatedSource ?work."+
		" ?bn owl:annotatedProperty <http://publications.europa.eu/ontology/cdm#resource_legal_based_on_resource_legal>."+
		" ?bn owl:annotatedTarget ?lbs."+
		" ?bn annot:comment_on_legal_basis ?lbsuffix}}")
	add(o.IncludeForce, "OPTIONAL{?work cdm:resource_legal_in-force ?force.}")
	add(o.IncludeEurovoc, `OPTIONAL{?work cdm:work_is_about_concept_eurovoc ?eurovoc. graph ?gs { ?eurovoc skos:prefLabel ?subjectLabel filter (lang(?subjectLabel)="en") }.}`)
	add(o.IncludeAuthor, "OPTIONAL{?work cdm:work_created_by_agent ?authorx. ?authorx skos:prefLabel ?author. FILTER(lang(?author)='en')}.")
	add(o.IncludeCitations, "OPTIONAL{?work cdm:work_cites_work ?citation. ?citation cdm:resource_legal_id_celex ?citationcelex.}")
	add(o.IncludeCourtProcedure, "OPTIONAL{?work cdm:case-law_has_type_procedure_concept_type_procedure ?proc. ?proc skos:prefLabel ?courtprocedure. FILTER(lang(?courtprocedure)='en')}.")
	add(o.IncludeAdvocateGeneral, "OPTIONAL{?work cdm:case-law_delivered_by_advocate-general ?agx. ?agx cdm:agent_name ?ag.}")
	add(o.IncludeJudgeRapporteur, "OPTIONAL{?work cdm:case-law_delivered_by_judge ?jrx. ?jrx cdm:agent_name ?jr.}")
	add(o.IncludeCourtFormation, "OPTIONAL{?work cdm:case-law_delivered_by_court-formation ?cfx. ?cfx skos:prefLabel ?cf. FILTER(lang(?cf)='en')}.")
	add(o.IncludeScholarship, "OPTIONAL{?work cdm:case-law_article_journal_related ?scholarship.}")
	add(o.IncludeProposal, "OPTIONAL{?work cdm:resource_legal_adopts_resource_legal ?adoptedx. ?adoptedx cdm:resource_legal_id_celex ?proposal.}")
	add(o.IncludeECLI, "OPTIONAL{?work cdm:case-law_ecli ?ecli.}")
	add(o.IncludeDirectory, "OPTIONAL{?work cdm:resource_legal_is_about_concept_directory-code ?directory.}")
	add(o.IncludeSector, "OPTIONAL{?work cdm:resource_legal_id_sector ?sector.}")
	return clauses
}
