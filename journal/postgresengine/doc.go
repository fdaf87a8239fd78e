// Package postgresengine provides a PostgreSQL implementation of the journal store.
//
// The journal store persists journal.StorableEntry records: one row per
// state-mutating method call, carrying the subject's before-image and the
// call's arguments as JSONB. Entries are append-only; the store offers
// Append, Query, and Prune.
//
// The package supports three database libraries through internal adapters:
//   - pgxpool.Pool via NewJournalStoreFromPGXPool
//   - sql.DB via NewJournalStoreFromSQLDB
//   - sqlx.DB via NewJournalStoreFromSQLX
//
// Expected table schema (default table name "journal_entries"):
//
//	CREATE TABLE journal_entries (
//	    sequence_number BIGSERIAL   PRIMARY KEY,
//	    entry_id        TEXT        NOT NULL,
//	    subject_type    TEXT        NOT NULL,
//	    subject_id      TEXT        NOT NULL,
//	    operation       TEXT        NOT NULL,
//	    recorded_at     TIMESTAMPTZ NOT NULL,
//	    before          JSONB       NOT NULL,
//	    args            JSONB       NOT NULL
//	);
//
// Common usage pattern:
//
//	store, err := postgresengine.NewJournalStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName(journal.TableNameForSubject("person")),
//		postgresengine.WithLogger(slog.Default()),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Append(ctx, entry)
//
//	entries, err := store.Query(ctx, filter)
package postgresengine
