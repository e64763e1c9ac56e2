package mock

import (
	"context"

	"github.com/fwojciec/eurlex"
)

var _ eurlex.QueryRecordService = (*QueryRecordService)(nil)

// QueryRecordService is a mock implementation of eurlex.QueryRecordService.
type QueryRecordService struct {
	CreateQueryRecordFn   func(ctx context.Context, rec *eurlex.QueryRecord) error
	FindQueryRecordByIDFn func(ctx context.Context, id string) (*eurlex.QueryRecord, error)
	FindQueryRecordsFn    func(ctx context.Context, filter eurlex.QueryRecordFilter) ([]*eurlex.QueryRecord, error)
	DeleteQueryRecordFn   func(ctx context.Context, id string) error
}

func (s *QueryRecordService) CreateQueryRecord(ctx context.Context, rec *eurlex.QueryRecord) error {
	return s.CreateQueryRecordFn(ctx, rec)
}

func (s *QueryRecordService) FindQueryRecordByID(ctx context.Context, id string) (*eurlex.QueryRecord, error) {
	return s.FindQueryRecordByIDFn(ctx, id)
}

func (s *QueryRecordService) FindQueryRecords(ctx context.Context, filter eurlex.QueryRecordFilter) ([]*eurlex.QueryRecord, error) {
	return s.FindQueryRecordsFn(ctx, filter)
}

func (s *QueryRecordService) DeleteQueryRecord(ctx context.Context, id string) error {
	return s.DeleteQueryRecordFn(ctx, id)
}
