package eurlex

import (
	"context"
	"time"
)

// QueryRecord is an executed query kept together with its results.
// Records are history only and are never consulted before a query runs.
type QueryRecord struct {
	ID           string       `json:"id"`
	Query        string       `json:"query"`
	QueryHash    string       `json:"queryHash"`
	ResourceType ResourceType `json:"resourceType"`
	Result       *ResultSet   `json:"result"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *QueryRecord) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "query record query required")
	}
	if r.ResourceType != "" {
		if err := r.ResourceType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QueryRecordService represents a service for managing query records.
type QueryRecordService interface {
	// CreateQueryRecord stores a new record, assigning its ID, hash and
	// creation time.
	CreateQueryRecord(ctx context.Context, rec *QueryRecord) error

	// FindQueryRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindQueryRecordByID(ctx context.Context, id string) (*QueryRecord, error)

	// FindQueryRecords retrieves records matching the filter, newest first.
	FindQueryRecords(ctx context.Context, filter QueryRecordFilter) ([]*QueryRecord, error)

	// DeleteQueryRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteQueryRecord(ctx context.Context, id string) error
}

// QueryRecordFilter represents a filter for FindQueryRecords.
type QueryRecordFilter struct {
	ID           *string       `json:"id"`
	QueryHash    *string       `json:"queryHash"`
	ResourceType *ResourceType `json:"resourceType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
