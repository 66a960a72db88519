package db

import (
	"database/sql"
	"fmt"

	"github.com/thatsimonsguy/smart-home/internal/home"
	"github.com/thatsimonsguy/smart-home/internal/store"
)

// Store persists home collections as SQLite snapshots. It follows the same
// contract as the flat file store: a failed load yields an empty collection.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load() (*home.Collection, error) {
	id, err := GetLatestSnapshotID(s.db)
	if err != nil {
		return home.NewCollection(), fmt.Errorf("%w: %w", store.ErrPersistence, err)
	}
	if id == "" {
		return home.NewCollection(), nil
	}

	c, err := GetSnapshot(s.db, id)
	if err != nil {
		return home.NewCollection(), fmt.Errorf("%w: snapshot %s: %w", store.ErrPersistence, id, err)
	}
	return c, nil
}

func (s *Store) Save(c *home.Collection) error {
	if _, err := SaveSnapshot(s.db, c); err != nil {
		return fmt.Errorf("%w: %w", store.ErrPersistence, err)
	}
	return nil
}
