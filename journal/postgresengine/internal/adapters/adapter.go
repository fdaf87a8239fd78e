package adapters

import "context"

// DBAdapter is the minimal database surface the journal store needs: one
// method for row-returning statements and one for statements where only the
// affected row count matters (inserts, deletes).
type DBAdapter interface {
	// Query runs a row-returning statement.
	Query(ctx context.Context, query string) (DBRows, error)

	// Exec runs a statement and reports the number of rows it affected.
	Exec(ctx context.Context, query string) (int64, error)
}

// DBRows is the subset of a result set the journal store iterates over.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}
