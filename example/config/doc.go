// Package config provides database configuration helpers for PostgreSQL
// connections used by the journal store examples and tests.
//
// This package contains factory functions for creating database connections
// using different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB) with a
// pre-configured test database DSN, plus loading of overrides from a YAML
// file for deployments where the DSN or journal table differ.
package config
