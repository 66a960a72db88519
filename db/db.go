package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS homes (
	snapshot_id TEXT NOT NULL,
	position    INTEGER NOT NULL,
	capacity    INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, position)
);

CREATE TABLE IF NOT EXISTS devices (
	snapshot_id   TEXT NOT NULL,
	home_position INTEGER NOT NULL,
	position      INTEGER NOT NULL,
	kind          TEXT NOT NULL,
	option_value  INTEGER NOT NULL,
	switched_on   BOOLEAN NOT NULL,
	PRIMARY KEY (snapshot_id, home_position, position)
);
`

// Open opens (or creates) the database at path and applies the schema.
func Open(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps ":memory:" databases coherent and serialises writers
	conn.SetMaxOpenConns(1)

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func Migrate(conn *sql.DB) error {
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
