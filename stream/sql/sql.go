// Package sql provides stream extractors for database operations using
// database/sql. It enables walking query results as part of stream
// pipelines.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lguimbarda/min-stream/stream"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a pull extractor over a query's result set. The query
// itself runs lazily on the first Advance; query, scan, and iteration
// failures exhaust the extractor and are reported by Err. Lift the
// result into the fluent API with stream.FromExtractor.
func Query[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], args ...any) *Rows[T] {
	return &Rows[T]{ctx: ctx, db: db, query: query, args: args, scan: scanner}
}

// Rows walks a result set one row at a time. When Advance returns
// false, Err must be checked. The underlying sql.Rows is closed when
// the walk finishes, fails, or Close is called.
type Rows[T any] struct {
	ctx   context.Context
	db    *sql.DB
	query string
	args  []any
	scan  Scanner[T]

	rows    *sql.Rows
	current T
	started bool
	done    bool
	err     error
}

func (r *Rows[T]) Advance() bool {
	if r.done {
		return false
	}
	if r.rows == nil {
		rows, err := r.db.QueryContext(r.ctx, r.query, r.args...)
		if err != nil {
			r.err = err
			r.done = true
			return false
		}
		r.rows = rows
	}
	if !r.rows.Next() {
		r.finish()
		return false
	}
	value, err := r.scan(r.rows)
	if err != nil {
		r.err = err
		r.finish()
		return false
	}
	r.current = value
	r.started = true
	return true
}

func (r *Rows[T]) Get() T {
	if !r.started {
		panic("stream: Get called before a successful Advance")
	}
	return r.current
}

// Clone shares the underlying result set; a query walk is single-pass
// and cannot be forked into independent streams.
func (r *Rows[T]) Clone() stream.Extractor[T] {
	return r
}

// Err returns the first error encountered while querying, scanning, or
// iterating. It must be checked once Advance has returned false.
func (r *Rows[T]) Err() error {
	return r.err
}

// Close releases the result set early. Advancing after Close reports
// exhaustion. Close is safe to call more than once.
func (r *Rows[T]) Close() error {
	r.done = true
	if r.rows == nil {
		return nil
	}
	return r.rows.Close()
}

func (r *Rows[T]) finish() {
	r.done = true
	if err := r.rows.Err(); err != nil && r.err == nil {
		r.err = err
	}
	if err := r.rows.Close(); err != nil && r.err == nil {
		r.err = err
	}
}

// QueryStrings is a convenience query whose rows are scanned into
// slices of strings, one entry per column.
func QueryStrings(ctx context.Context, db *sql.DB, query string, args ...any) *Rows[[]string] {
	return Query(ctx, db, query, func(rows *sql.Rows) ([]string, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		result := make([]string, len(cols))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				result[i] = ""
			case []byte:
				result[i] = string(val)
			case string:
				result[i] = val
			case int64:
				result[i] = fmt.Sprintf("%d", val)
			case float64:
				result[i] = fmt.Sprintf("%g", val)
			case bool:
				result[i] = fmt.Sprintf("%t", val)
			default:
				result[i] = fmt.Sprintf("%v", val)
			}
		}
		return result, nil
	}, args...)
}

// QueryMaps is a convenience query whose rows are scanned into maps
// with column names as keys.
func QueryMaps(ctx context.Context, db *sql.DB, query string, args ...any) *Rows[map[string]any] {
	return Query(ctx, db, query, func(rows *sql.Rows) (map[string]any, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		result := make(map[string]any, len(cols))
		for i, col := range cols {
			result[col] = values[i]
		}
		return result, nil
	}, args...)
}

// QueryRow executes a query expecting a single row and scans it with
// the given function.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) (T, error) {
	return scanner(db.QueryRowContext(ctx, query, args...))
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// Exec executes a statement once and reports its result. Drivers that
// do not support an id or count leave the field zero.
func Exec(ctx context.Context, db *sql.DB, query string, args ...any) (ExecResult, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, err
	}
	var result ExecResult
	if id, err := res.LastInsertId(); err == nil {
		result.LastInsertID = id
	}
	if n, err := res.RowsAffected(); err == nil {
		result.RowsAffected = n
	}
	return result, nil
}

// ExecEach prepares the statement once and executes it for every
// element of the stream, binding each element to arguments with the
// binder function. It returns the total number of affected rows and
// stops at the first failure.
func ExecEach[T any](ctx context.Context, db *sql.DB, query string, s stream.Stream[T], binder func(T) []any) (int64, error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var affected int64
	for {
		v, ok := s.Next()
		if !ok {
			return affected, nil
		}
		res, err := stmt.ExecContext(ctx, binder(v)...)
		if err != nil {
			return affected, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return affected, err
		}
		affected += n
	}
}

// Transaction executes a function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// Otherwise, it is committed.
func Transaction[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return value, errors.Join(err, rbErr)
		}
		return value, err
	}
	return value, tx.Commit()
}
