package config

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// PostgresSQLXTestConfig creates a *sqlx.DB for the test database. It does
// not ping; sqlx.Open only validates the DSN, so the handle also serves
// tests that never touch the database.
func PostgresSQLXTestConfig() *sqlx.DB {
	db, err := sqlx.Open("postgres", PostgresTestDSN())
	if err != nil {
		log.Fatal("Failed to open database connection, error: ", err)
	}

	return db
}
