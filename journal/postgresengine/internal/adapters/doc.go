// Package adapters narrows the three supported PostgreSQL client libraries
// (pgxpool.Pool, sql.DB, sqlx.DB) to the two operations the journal store
// performs: running a row-returning query and running a statement for its
// affected row count. The store never sees which library sits underneath.
package adapters
