package postgresengine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mwolters/before-advice-go/journal"
	"github.com/mwolters/before-advice-go/journal/postgresengine/internal/adapters"
)

// The read path is exercised through fake adapters, so scanning and entry
// rebuilding can be verified without a database connection.

type fakeRow struct {
	entryID        string
	subjectType    string
	subjectID      string
	operation      string
	recordedAt     time.Time
	before         []byte
	args           []byte
	sequenceNumber journal.SequenceNumberUint
}

type fakeRows struct {
	rows     []fakeRow
	position int
	scanErr  error
	closed   bool
}

func (f *fakeRows) Next() bool {
	if f.position >= len(f.rows) {
		return false
	}

	f.position++

	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}

	row := f.rows[f.position-1]
	*dest[0].(*string) = row.entryID
	*dest[1].(*string) = row.subjectType
	*dest[2].(*string) = row.subjectID
	*dest[3].(*string) = row.operation
	*dest[4].(*time.Time) = row.recordedAt
	*dest[5].(*[]byte) = row.before
	*dest[6].(*[]byte) = row.args
	*dest[7].(*journal.SequenceNumberUint) = row.sequenceNumber

	return nil
}

func (f *fakeRows) Close() error {
	f.closed = true

	return nil
}

type fakeDBAdapter struct {
	rows         *fakeRows
	queryErr     error
	rowsAffected int64
	execErr      error
	lastQuery    string
}

func (f *fakeDBAdapter) Query(_ context.Context, query string) (adapters.DBRows, error) {
	f.lastQuery = query
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	return f.rows, nil
}

func (f *fakeDBAdapter) Exec(_ context.Context, query string) (int64, error) {
	f.lastQuery = query
	if f.execErr != nil {
		return 0, f.execErr
	}

	return f.rowsAffected, nil
}

type recordingLogger struct {
	errorMessages []string
}

func (l *recordingLogger) Debug(_ string, _ ...any) {}
func (l *recordingLogger) Info(_ string, _ ...any)  {}
func (l *recordingLogger) Warn(_ string, _ ...any)  {}

func (l *recordingLogger) Error(msg string, _ ...any) {
	l.errorMessages = append(l.errorMessages, msg)
}

func validFakeRow() fakeRow {
	return fakeRow{
		entryID:        "a9702c22-1df5-48a5-a078-1762dfb3cc2e",
		subjectType:    "person",
		subjectID:      "subject-1",
		operation:      "rename",
		recordedAt:     time.Unix(0, 0).UTC(),
		before:         []byte(`{"firstName": "barak", "lastName": "obama"}`),
		args:           []byte(`["Barak", "Obama"]`),
		sequenceNumber: 1,
	}
}

func Test_Query_RebuildsEntriesFromRows(t *testing.T) {
	// arrange
	rows := &fakeRows{rows: []fakeRow{validFakeRow()}}
	db := &fakeDBAdapter{rows: rows}
	js := JournalStore{db: db, tableName: "people_journal"}

	// act
	entries, err := js.Query(context.Background(), journal.BuildEntryFilter().MatchingAnyEntry())

	// assert
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "a9702c22-1df5-48a5-a078-1762dfb3cc2e", entries[0].EntryID.String())
	assert.Equal(t, "person", entries[0].SubjectType)
	assert.Equal(t, "subject-1", entries[0].SubjectID)
	assert.Equal(t, "rename", entries[0].Operation)
	assert.Equal(t, time.Unix(0, 0).UTC(), entries[0].RecordedAt)
	assert.JSONEq(t, `{"firstName": "barak", "lastName": "obama"}`, string(entries[0].BeforeJSON))
	assert.JSONEq(t, `["Barak", "Obama"]`, string(entries[0].ArgsJSON))
	assert.Contains(t, db.lastQuery, `ORDER BY "sequence_number" ASC`)
	assert.True(t, rows.closed)
}

func Test_Query_ReturnsEmptySlice_ForNoRows(t *testing.T) {
	// arrange
	db := &fakeDBAdapter{rows: &fakeRows{}}
	js := JournalStore{db: db, tableName: "people_journal"}

	// act
	entries, err := js.Query(context.Background(), journal.BuildEntryFilter().MatchingAnyEntry())

	// assert
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func Test_Query_ShouldFail_WhenScanningARowFails(t *testing.T) {
	// arrange
	scanFailure := errors.New("broken row")
	rows := &fakeRows{rows: []fakeRow{validFakeRow()}, scanErr: scanFailure}
	logger := &recordingLogger{}
	js := JournalStore{db: &fakeDBAdapter{rows: rows}, tableName: "people_journal", logger: logger}

	// act
	_, err := js.Query(context.Background(), journal.BuildEntryFilter().MatchingAnyEntry())

	// assert
	assert.ErrorIs(t, err, journal.ErrScanningDBRowFailed)
	assert.ErrorIs(t, err, scanFailure)
	assert.Contains(t, logger.errorMessages, logMsgScanRowFailed)
	assert.True(t, rows.closed)
}

func Test_Query_ShouldFail_WhenARowDoesNotFormAValidEntry(t *testing.T) {
	// arrange
	row := validFakeRow()
	row.entryID = "not-a-uuid"
	logger := &recordingLogger{}
	js := JournalStore{
		db:        &fakeDBAdapter{rows: &fakeRows{rows: []fakeRow{row}}},
		tableName: "people_journal",
		logger:    logger,
	}

	// act
	_, err := js.Query(context.Background(), journal.BuildEntryFilter().MatchingAnyEntry())

	// assert
	assert.ErrorIs(t, err, journal.ErrBuildingStorableEntryFailed)
	assert.ErrorIs(t, err, journal.ErrInvalidEntryID)
	assert.Contains(t, logger.errorMessages, logMsgRebuildEntryFailed)
}

func Test_Query_ShouldFail_WhenTheDatabaseQueryFails(t *testing.T) {
	// arrange
	queryFailure := errors.New("connection reset")
	js := JournalStore{db: &fakeDBAdapter{queryErr: queryFailure}, tableName: "people_journal"}

	// act
	_, err := js.Query(context.Background(), journal.BuildEntryFilter().MatchingAnyEntry())

	// assert
	assert.ErrorIs(t, err, journal.ErrQueryingEntriesFailed)
	assert.ErrorIs(t, err, queryFailure)
}

func Test_Append_ShouldFail_WhenFewerRowsAffectedThanEntriesSupplied(t *testing.T) {
	// arrange
	db := &fakeDBAdapter{rowsAffected: 1}
	js := JournalStore{db: db, tableName: "people_journal"}
	entry := testEntry(t)

	// act
	err := js.Append(context.Background(), entry, testEntry(t))

	// assert
	assert.ErrorIs(t, err, journal.ErrAppendingEntryFailed)
}

func Test_Prune_ReportsRowsAffected(t *testing.T) {
	// arrange
	db := &fakeDBAdapter{rowsAffected: 3}
	js := JournalStore{db: db, tableName: "people_journal"}

	// act
	rowsAffected, err := js.Prune(context.Background(), journal.BuildEntryFilter().MatchingAnyEntry())

	// assert
	assert.NoError(t, err)
	assert.Equal(t, int64(3), rowsAffected)
	assert.Contains(t, db.lastQuery, `DELETE FROM "people_journal"`)
}
