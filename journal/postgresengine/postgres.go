package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/mwolters/before-advice-go/journal"
	"github.com/mwolters/before-advice-go/journal/postgresengine/internal/adapters"
)

const (
	defaultJournalTableName       = "journal_entries"
	logMsgBuildSelectQueryFailed  = "failed to build select query"
	logMsgBuildInsertQueryFailed  = "failed to build insert query"
	logMsgBuildDeleteQueryFailed  = "failed to build delete query"
	logMsgDBQueryFailed           = "database query execution failed"
	logMsgDBExecFailed            = "database execution failed during entry append"
	logMsgDBDeleteFailed          = "database execution failed during entry prune"
	logMsgCloseRowsFailed         = "failed to close database rows"
	logMsgScanRowFailed           = "failed to scan database row"
	logMsgRebuildEntryFailed      = "failed to rebuild storable entry from database row"
	logMsgIncompleteAppend        = "append affected fewer rows than entries supplied"
	logMsgQueryCompleted          = "query completed"
	logMsgEntriesAppended         = "entries appended"
	logMsgEntriesPruned           = "entries pruned"
	logMsgSQLExecuted             = "executed sql for: "
	logMsgOperation               = "journal operation: "
	logAttrError                  = "error"
	logAttrQuery                  = "query"
	logAttrEntryCount             = "entry_count"
	logAttrDurationMS             = "duration_ms"
	logAttrExpectedEntries        = "expected_entries"
	logAttrRowsAffected           = "rows_affected"
	logActionQuery                = "query"
	logActionAppend               = "append"
	logActionPrune                = "prune"
	colEntryID                    = "entry_id"
	colSubjectType                = "subject_type"
	colSubjectID                  = "subject_id"
	colOperation                  = "operation"
	colRecordedAt                 = "recorded_at"
	colBefore                     = "before"
	colArgs                       = "args"
	colSequenceNumber             = "sequence_number"
	dialectPostgres               = "postgres"
	castJsonb                     = "?::jsonb"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// JournalStore represents a PostgreSQL-backed storage mechanism for journal entries
// recorded by before-advice hooks. It leverages a database adapter and supports
// customizable logging and journal table configuration.
type JournalStore struct {
	db        adapters.DBAdapter
	tableName string
	logger    journal.Logger
}

type queryResultRow struct {
	entryID        string
	subjectType    string
	subjectID      string
	operation      string
	recordedAt     time.Time
	before         []byte
	args           []byte
	sequenceNumber journal.SequenceNumberUint
}

// NewJournalStoreFromPGXPool creates a new JournalStore using a pgx Pool with optional configuration.
func NewJournalStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (JournalStore, error) {
	if db == nil {
		return JournalStore{}, journal.ErrNilDatabaseConnection
	}

	js := JournalStore{
		db:        adapters.NewPGXAdapter(db),
		tableName: defaultJournalTableName,
	}

	for _, option := range options {
		if err := option(&js); err != nil {
			return JournalStore{}, err
		}
	}

	return js, nil
}

// NewJournalStoreFromSQLDB creates a new JournalStore using a sql.DB with optional configuration.
func NewJournalStoreFromSQLDB(db *sql.DB, options ...Option) (JournalStore, error) {
	if db == nil {
		return JournalStore{}, journal.ErrNilDatabaseConnection
	}

	js := JournalStore{
		db:        adapters.NewSQLAdapter(db),
		tableName: defaultJournalTableName,
	}

	for _, option := range options {
		if err := option(&js); err != nil {
			return JournalStore{}, err
		}
	}

	return js, nil
}

// NewJournalStoreFromSQLX creates a new JournalStore using a sqlx.DB with optional configuration.
func NewJournalStoreFromSQLX(db *sqlx.DB, options ...Option) (JournalStore, error) {
	if db == nil {
		return JournalStore{}, journal.ErrNilDatabaseConnection
	}

	js := JournalStore{
		db:        adapters.NewSQLXAdapter(db),
		tableName: defaultJournalTableName,
	}

	for _, option := range options {
		if err := option(&js); err != nil {
			return JournalStore{}, err
		}
	}

	return js, nil
}

// Append inserts one or multiple journal.StorableEntry(s) into the journal table.
// The journal is append-only; entries are never updated in place.
func (js JournalStore) Append(
	ctx context.Context,
	entry journal.StorableEntry,
	additionalEntries ...journal.StorableEntry,
) error {

	allEntries := journal.StorableEntries{entry}
	allEntries = append(allEntries, additionalEntries...)

	sqlQuery, buildQueryErr := js.buildInsertQuery(allEntries)
	if buildQueryErr != nil {
		return buildQueryErr
	}

	rowsAffected, duration, execErr := js.executeAppendQuery(ctx, sqlQuery)
	if execErr != nil {
		return execErr
	}

	if rowsAffected < int64(len(allEntries)) {
		js.logOperation(
			logMsgIncompleteAppend,
			logAttrExpectedEntries, len(allEntries),
			logAttrRowsAffected, rowsAffected,
		)

		return journal.ErrAppendingEntryFailed
	}

	js.logOperation(
		logMsgEntriesAppended,
		logAttrEntryCount, len(allEntries),
		logAttrDurationMS, js.durationToMilliseconds(duration),
	)

	return nil
}

// Query retrieves entries matching the journal.Filter criteria, ordered by
// their position in the journal (oldest first).
func (js JournalStore) Query(ctx context.Context, filter journal.Filter) (journal.StorableEntries, error) {
	var empty journal.StorableEntries

	sqlQuery, buildQueryErr := js.buildSelectQuery(filter)
	if buildQueryErr != nil {
		return empty, buildQueryErr
	}

	rows, duration, queryErr := js.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return empty, queryErr
	}
	defer js.closeRows(rows)

	entries, scanErr := js.processQueryResults(rows)
	if scanErr != nil {
		return empty, scanErr
	}

	js.logOperation(
		logMsgQueryCompleted,
		logAttrEntryCount, len(entries),
		logAttrDurationMS, js.durationToMilliseconds(duration))

	return entries, nil
}

// Prune deletes entries matching the journal.Filter criteria, e.g. to retire
// a subject's history, and returns the number of rows removed.
func (js JournalStore) Prune(ctx context.Context, filter journal.Filter) (int64, error) {
	sqlQuery, buildQueryErr := js.buildDeleteQuery(filter)
	if buildQueryErr != nil {
		return 0, buildQueryErr
	}

	start := time.Now()
	rowsAffected, execErr := js.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	js.logQueryWithDuration(sqlQuery, logActionPrune, duration)

	if execErr != nil {
		if js.logger != nil {
			js.logger.Error(logMsgDBDeleteFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, errors.Join(journal.ErrPruningEntriesFailed, execErr)
	}

	js.logOperation(
		logMsgEntriesPruned,
		logAttrRowsAffected, rowsAffected,
		logAttrDurationMS, js.durationToMilliseconds(duration),
	)

	return rowsAffected, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (js JournalStore) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	queryDuration,
	error,
) {

	start := time.Now()
	rows, queryErr := js.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	js.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		if js.logger != nil {
			js.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, duration, errors.Join(journal.ErrQueryingEntriesFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (js JournalStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if js.logger != nil {
			js.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// processQueryResults converts database rows back into storable entries.
func (js JournalStore) processQueryResults(rows adapters.DBRows) (journal.StorableEntries, error) {
	var empty journal.StorableEntries
	result := queryResultRow{}
	entries := make(journal.StorableEntries, 0)

	for rows.Next() {
		rowScanErr := rows.Scan(
			&result.entryID,
			&result.subjectType,
			&result.subjectID,
			&result.operation,
			&result.recordedAt,
			&result.before,
			&result.args,
			&result.sequenceNumber,
		)
		if rowScanErr != nil {
			if js.logger != nil {
				js.logger.Error(logMsgScanRowFailed, logAttrError, rowScanErr.Error())
			}

			return empty, errors.Join(journal.ErrScanningDBRowFailed, rowScanErr)
		}

		entry, rebuildErr := journal.RebuildStorableEntry(
			result.entryID,
			result.subjectType,
			result.subjectID,
			result.operation,
			result.recordedAt,
			result.before,
			result.args,
		)
		if rebuildErr != nil {
			if js.logger != nil {
				js.logger.Error(logMsgRebuildEntryFailed, logAttrError, rebuildErr.Error())
			}

			return empty, errors.Join(journal.ErrBuildingStorableEntryFailed, rebuildErr)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// executeAppendQuery executes the SQL append query and returns rows affected and duration.
func (js JournalStore) executeAppendQuery(ctx context.Context, sqlQuery string) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	rowsAffected, execErr := js.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	js.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		if js.logger != nil {
			js.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, duration, errors.Join(journal.ErrAppendingEntryFailed, execErr)
	}

	return rowsAffected, duration, nil
}

func (js JournalStore) buildInsertQuery(allEntries journal.StorableEntries) (sqlQueryString, error) {
	rowValues := make([][]any, 0, len(allEntries))

	for _, entry := range allEntries {
		rowValues = append(rowValues, []any{
			entry.EntryID.String(),
			entry.SubjectType,
			entry.SubjectID,
			entry.Operation,
			entry.RecordedAt,
			goqu.L(castJsonb, string(entry.BeforeJSON)),
			goqu.L(castJsonb, string(entry.ArgsJSON)),
		})
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(js.tableName).
		Cols(colEntryID, colSubjectType, colSubjectID, colOperation, colRecordedAt, colBefore, colArgs).
		Vals(rowValues...)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if js.logger != nil {
			js.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, toSQLErr.Error(), logAttrEntryCount, len(allEntries))
		}
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (js JournalStore) buildSelectQuery(filter journal.Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(js.tableName).
		Select(colEntryID, colSubjectType, colSubjectID, colOperation, colRecordedAt, colBefore, colArgs, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	if expressions := js.filterExpressions(filter); len(expressions) > 0 {
		selectStmt = selectStmt.Where(goqu.And(expressions...))
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		if js.logger != nil {
			js.logger.Error(logMsgBuildSelectQueryFailed, logAttrError, toSQLErr.Error())
		}
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (js JournalStore) buildDeleteQuery(filter journal.Filter) (sqlQueryString, error) {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(js.tableName)

	if expressions := js.filterExpressions(filter); len(expressions) > 0 {
		deleteStmt = deleteStmt.Where(goqu.And(expressions...))
	}

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		if js.logger != nil {
			js.logger.Error(logMsgBuildDeleteQueryFailed, logAttrError, toSQLErr.Error())
		}
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (js JournalStore) filterExpressions(filter journal.Filter) []goqu.Expression {
	expressions := make([]goqu.Expression, 0)

	if subjectTypes := filter.SubjectTypes(); len(subjectTypes) > 0 {
		expressions = append(expressions, goqu.C(colSubjectType).In(subjectTypes))
	}

	if subjectIDs := filter.SubjectIDs(); len(subjectIDs) > 0 {
		expressions = append(expressions, goqu.C(colSubjectID).In(subjectIDs))
	}

	if operations := filter.Operations(); len(operations) > 0 {
		expressions = append(expressions, goqu.C(colOperation).In(operations))
	}

	if !filter.RecordedFrom().IsZero() {
		expressions = append(expressions, goqu.C(colRecordedAt).Gte(filter.RecordedFrom()))
	}

	if !filter.RecordedUntil().IsZero() {
		expressions = append(expressions, goqu.C(colRecordedAt).Lte(filter.RecordedUntil()))
	}

	return expressions
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (js JournalStore) logQueryWithDuration(
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	if js.logger != nil {
		js.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, js.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (js JournalStore) logOperation(action string, args ...any) {
	if js.logger != nil {
		js.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (js JournalStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
