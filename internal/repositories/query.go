package repositories

import (
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const CodeAmbiguous = "ambiguous"

// Query describes a read against one collection: which columns, which rows, in what order.
// Columns must name every field of the scanned struct (aliases allowed).
type Query struct {
	Table   string
	Columns []string
	Where   sq.Eq
	OrderBy []string
}

func (q Query) builder() sq.SelectBuilder {
	b := SqBuilder.Select(q.Columns...).From(q.Table)
	if len(q.Where) > 0 {
		b = b.Where(q.Where)
	}
	if len(q.OrderBy) > 0 {
		b = b.OrderBy(q.OrderBy...)
	}
	return b
}

// SelectAll returns every row matching q. No match yields an empty, non-nil slice.
func SelectAll[T any](ctx context.Context, db Querier, q Query) ([]T, error) {
	query, args, err := q.builder().ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query %s", q.Table)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, dbError(err, "failed to scan %s rows", q.Table)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// SelectOne returns the single row matching q. Zero matches is a not-found error,
// more than one match is an ambiguous error.
func SelectOne[T any](ctx context.Context, db Querier, q Query) (*T, error) {
	query, args, err := q.builder().Limit(2).ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query %s", q.Table)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, errors.NotFound(fmt.Sprintf("no %s row matches %s", q.Table, describe(q.Where)))
	case errors.Is(err, pgx.ErrTooManyRows):
		return nil, errors.WrapWithCode(err, CodeAmbiguous,
			fmt.Sprintf("more than one %s row matches %s", q.Table, describe(q.Where)))
	case err != nil:
		return nil, dbError(err, "failed to scan %s row", q.Table)
	}

	return &item, nil
}

// InsertReturning inserts values into table and scans the stored row back.
func InsertReturning[T any](ctx context.Context, db Querier, table string, values map[string]any, columns []string) (*T, error) {
	query, args, err := SqBuilder.
		Insert(table).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to insert into %s", table)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, dbError(err, "failed to insert into %s", table)
	}

	return &item, nil
}

// Update sets values on the rows matching where and returns how many rows changed.
func Update(ctx context.Context, db Querier, table string, values map[string]any, where sq.Eq) (int64, error) {
	query, args, err := SqBuilder.
		Update(table).
		SetMap(values).
		Where(where).
		ToSql()
	if err != nil {
		return 0, ErrBadQuery
	}

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, dbError(err, "failed to update %s", table)
	}

	return result.RowsAffected(), nil
}

// Delete removes the rows matching where and returns how many rows were removed.
func Delete(ctx context.Context, db Querier, table string, where sq.Eq) (int64, error) {
	query, args, err := SqBuilder.
		Delete(table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, ErrBadQuery
	}

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, dbError(err, "failed to delete from %s", table)
	}

	return result.RowsAffected(), nil
}

// dbError wraps err with context. Connection failures and timeouts become
// service-unavailable errors so callers can tell them apart from bad data.
func dbError(err error, format string, args ...any) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return errors.WrapWithCode(errors.Join(errors.ErrServiceUnavailable, err),
			errors.CodeRemote, "database unavailable")
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func describe(where sq.Eq) string {
	if len(where) == 0 {
		return "the query"
	}
	parts := make([]string, 0, len(where))
	for k, v := range where {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	slices.Sort(parts)
	return strings.Join(parts, ", ")
}
