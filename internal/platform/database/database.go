// Package database provides the PostgreSQL connection and schema migration
// management.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open opens a PostgreSQL pool via the pgx stdlib driver. sql.Open does not
// establish a connection; call db.Ping() to verify reachability.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
