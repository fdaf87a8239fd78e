package journal

import (
	"errors"
)

var ErrEmptyTableNameSupplied = errors.New("empty journal table name supplied")
var ErrNilDatabaseConnection = errors.New("nil database connection supplied")

var (
	// ErrBuildingQueryFailed is returned when an SQL statement could not be built.
	ErrBuildingQueryFailed = errors.New("building sql query failed")

	// ErrQueryingEntriesFailed is returned when the database query for journal entries fails.
	ErrQueryingEntriesFailed = errors.New("querying journal entries failed")

	// ErrScanningDBRowFailed is returned when a database row could not be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrBuildingStorableEntryFailed is returned when a queried row does not form a valid entry.
	ErrBuildingStorableEntryFailed = errors.New("building storable entry from database row failed")

	// ErrAppendingEntryFailed is returned when the append operation fails.
	ErrAppendingEntryFailed = errors.New("appending journal entry failed")

	// ErrPruningEntriesFailed is returned when the prune operation fails.
	ErrPruningEntriesFailed = errors.New("pruning journal entries failed")
)

// SequenceNumberUint is a type alias for uint, representing the position of an entry within the journal table.
type SequenceNumberUint = uint
