package postgresengine_test

import (
	"testing"

	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/assert"

	"github.com/mwolters/before-advice-go/example/config"
	"github.com/mwolters/before-advice-go/journal"
	"github.com/mwolters/before-advice-go/journal/postgresengine"
)

func Test_FactoryFunctions_NewJournalStore_ShouldFail_WithNilDatabaseConnection(t *testing.T) {
	testCases := []struct {
		name        string
		factoryFunc func() (postgresengine.JournalStore, error)
	}{
		{
			name: "NewJournalStoreFromPGXPool with nil",
			factoryFunc: func() (postgresengine.JournalStore, error) {
				return postgresengine.NewJournalStoreFromPGXPool(nil)
			},
		},
		{
			name: "NewJournalStoreFromSQLDB with nil",
			factoryFunc: func() (postgresengine.JournalStore, error) {
				return postgresengine.NewJournalStoreFromSQLDB(nil)
			},
		},
		{
			name: "NewJournalStoreFromSQLX with nil",
			factoryFunc: func() (postgresengine.JournalStore, error) {
				return postgresengine.NewJournalStoreFromSQLX(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := tc.factoryFunc()

			// assert
			assert.ErrorIs(t, err, journal.ErrNilDatabaseConnection)
		})
	}
}

func Test_FactoryFunctions_NewJournalStore_ShouldFail_WithEmptyTableName(t *testing.T) {
	testCases := []struct {
		name        string
		factoryFunc func() (postgresengine.JournalStore, error)
	}{
		{
			name: "NewJournalStoreFromSQLDB with empty table name",
			factoryFunc: func() (postgresengine.JournalStore, error) {
				db := config.PostgresSQLDBTestConfig()
				defer func() { _ = db.Close() }()

				return postgresengine.NewJournalStoreFromSQLDB(db, postgresengine.WithTableName(""))
			},
		},
		{
			name: "NewJournalStoreFromSQLX with empty table name",
			factoryFunc: func() (postgresengine.JournalStore, error) {
				db := config.PostgresSQLXTestConfig()
				defer func() { _ = db.Close() }()

				return postgresengine.NewJournalStoreFromSQLX(db, postgresengine.WithTableName(""))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := tc.factoryFunc()

			// assert
			assert.ErrorIs(t, err, journal.ErrEmptyTableNameSupplied)
		})
	}
}

func Test_FactoryFunctions_NewJournalStore_AcceptsTableNameAndLogger(t *testing.T) {
	// arrange
	db := config.PostgresSQLDBTestConfig()
	defer func() { _ = db.Close() }()

	// act
	_, err := postgresengine.NewJournalStoreFromSQLDB(
		db,
		postgresengine.WithTableName(journal.TableNameForSubject("person")),
		postgresengine.WithLogger(nil),
	)

	// assert
	assert.NoError(t, err)
}
