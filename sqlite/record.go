package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/eurlex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ eurlex.QueryRecordService = (*QueryRecordService)(nil)

// QueryRecordService implements eurlex.QueryRecordService using SQLite.
// Result columns and rows are stored as JSON.
type QueryRecordService struct {
	db *DB
}

// NewQueryRecordService creates a new QueryRecordService.
func NewQueryRecordService(db *DB) *QueryRecordService {
	return &QueryRecordService{db: db}
}

const recordColumns = "id, query, query_hash, resource_type, columns, rows, created_at"

// CreateQueryRecord creates a new query record.
func (s *QueryRecordService) CreateQueryRecord(ctx context.Context, rec *eurlex.QueryRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	result := rec.Result
	if result == nil {
		result = &eurlex.ResultSet{}
	}
	columns, err := json.Marshal(nonNil(result.Columns))
	if err != nil {
		return fmt.Errorf("failed to encode columns: %w", err)
	}
	rows, err := json.Marshal(nonNil(result.Rows))
	if err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.QueryHash = HashQuery(rec.Query)
	rec.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO query_records (id, query, query_hash, resource_type, columns, rows, row_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Query, rec.QueryHash, string(rec.ResourceType), string(columns), string(rows),
		result.Len(), rec.CreatedAt.Format(timestampFormat))

	return err
}

// FindQueryRecordByID retrieves a query record by ID.
func (s *QueryRecordService) FindQueryRecordByID(ctx context.Context, id string) (*eurlex.QueryRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM query_records WHERE id = ?", id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, eurlex.Errorf(eurlex.ENOTFOUND, "query record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindQueryRecords retrieves query records matching the filter, newest first.
func (s *QueryRecordService) FindQueryRecords(ctx context.Context, filter eurlex.QueryRecordFilter) ([]*eurlex.QueryRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM query_records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.QueryHash != nil {
		query.WriteString(" AND query_hash = ?")
		args = append(args, *filter.QueryHash)
	}
	if filter.ResourceType != nil {
		query.WriteString(" AND resource_type = ?")
		args = append(args, string(*filter.ResourceType))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*eurlex.QueryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteQueryRecord permanently removes a query record.
func (s *QueryRecordService) DeleteQueryRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM query_records WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return eurlex.Errorf(eurlex.ENOTFOUND, "query record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*eurlex.QueryRecord, error) {
	var rec eurlex.QueryRecord
	var resourceType, columns, rows, createdAt string

	if err := row.Scan(&rec.ID, &rec.Query, &rec.QueryHash, &resourceType, &columns, &rows, &createdAt); err != nil {
		return nil, err
	}
	rec.ResourceType = eurlex.ResourceType(resourceType)

	rec.Result = &eurlex.ResultSet{}
	if err := json.Unmarshal([]byte(columns), &rec.Result.Columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns: %w", err)
	}
	if err := json.Unmarshal([]byte(rows), &rec.Result.Rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	var err error
	rec.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
