package mock

import (
	"context"

	"github.com/fwojciec/eurlex"
)

var _ eurlex.QueryExecutor = (*QueryExecutor)(nil)

// QueryExecutor is a mock implementation of eurlex.QueryExecutor.
type QueryExecutor struct {
	ExecuteFn func(ctx context.Context, query string) (*eurlex.ResultSet, error)
}

func (e *QueryExecutor) Execute(ctx context.Context, query string) (*eurlex.ResultSet, error) {
	return e.ExecuteFn(ctx, query)
}
