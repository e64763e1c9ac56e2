package eurlex

import "context"

// DefaultEndpoint is the public Cellar SPARQL endpoint.
const DefaultEndpoint = "http://publications.europa.eu/webapi/rdf/sparql"

// QueryExecutor runs SPARQL queries against an endpoint.
type QueryExecutor interface {
	// Execute sends the query and returns the decoded result table.
	// Returns ERETRIEVAL if the endpoint cannot be reached or answers
	// with a non-success status.
	Execute(ctx context.Context, query string) (*ResultSet, error)
}
