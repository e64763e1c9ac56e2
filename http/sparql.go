package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/eurlex"
)

// SPARQLResultsXML is the media type of SPARQL query results in XML.
const SPARQLResultsXML = "application/sparql-results+xml"

// Ensure Executor implements eurlex.QueryExecutor at compile time.
var _ eurlex.QueryExecutor = (*Executor)(nil)

// Executor runs SPARQL queries against a remote endpoint.
type Executor struct {
	endpoint string
	client   *client
	lenient  *slog.Logger
}

// NewExecutor creates a new Executor for the Cellar endpoint.
func NewExecutor(opts ...Option) *Executor {
	o := newOptions(opts)
	return &Executor{
		endpoint: o.endpoint,
		client:   newClient(o),
		lenient:  o.lenient,
	}
}

// Execute posts the query and decodes the XML result table.
func (e *Executor) Execute(ctx context.Context, query string) (*eurlex.ResultSet, error) {
	rs, err := e.execute(ctx, query)
	if err != nil && e.lenient != nil && ctx.Err() == nil {
		e.lenient.Warn("query failed", "endpoint", e.endpoint, "err", err)
		return &eurlex.ResultSet{}, nil
	}
	return rs, err
}

func (e *Executor) execute(ctx context.Context, query string) (*eurlex.ResultSet, error) {
	if strings.TrimSpace(query) == "" {
		return nil, eurlex.Errorf(eurlex.EINVALID, "query required")
	}

	form := url.Values{"query": {query}}
	header := http.Header{
		"Accept":       {SPARQLResultsXML},
		"Content-Type": {"application/x-www-form-urlencoded"},
	}
	req, err := newRequest(ctx, http.MethodPost, e.endpoint, strings.NewReader(form.Encode()), header)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	return decodeResults(resp.Body)
}

// decodeResults reads a SPARQL XML results document. Boolean results of
// ASK queries become a single "boolean" column.
func decodeResults(r io.Reader) (*eurlex.ResultSet, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, eurlex.Errorf(eurlex.EINVALID, "parsing SPARQL results: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "sparql" {
		return nil, eurlex.Errorf(eurlex.EINVALID, "SPARQL results: missing sparql element")
	}

	rs := &eurlex.ResultSet{Columns: []string{}, Rows: []eurlex.Row{}}
	if head := root.SelectElement("head"); head != nil {
		for _, v := range head.SelectElements("variable") {
			if name := v.SelectAttrValue("name", ""); name != "" {
				rs.Columns = append(rs.Columns, name)
			}
		}
	}

	if b := root.SelectElement("boolean"); b != nil {
		rs.Columns = []string{"boolean"}
		rs.Rows = append(rs.Rows, eurlex.Row{"boolean": strings.TrimSpace(b.Text())})
		return rs, nil
	}

	results := root.SelectElement("results")
	if results == nil {
		return rs, nil
	}
	for _, result := range results.SelectElements("result") {
		row := eurlex.Row{}
		for _, binding := range result.SelectElements("binding") {
			name := binding.SelectAttrValue("name", "")
			if name == "" {
				continue
			}
			if value := binding.ChildElements(); len(value) > 0 {
				row[name] = value[0].Text()
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
