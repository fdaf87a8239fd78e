package config

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq" // postgres driver
)

// PostgresSQLDBTestConfig creates a *sql.DB for the test database. It does
// not ping; sql.Open only validates the DSN, so the handle also serves tests
// that never touch the database.
func PostgresSQLDBTestConfig() *sql.DB {
	db, err := sql.Open("postgres", PostgresTestDSN())
	if err != nil {
		log.Fatal("Failed to open database connection, error: ", err)
	}

	return db
}
