package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thatsimonsguy/smart-home/internal/device"
	"github.com/thatsimonsguy/smart-home/internal/home"
)

// StartTransaction starts a new database transaction.
func StartTransaction(db *sql.DB) (*sql.Tx, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	return tx, nil
}

// CommitTransaction commits the given transaction.
func CommitTransaction(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RollbackTransaction rolls back the given transaction.
func RollbackTransaction(tx *sql.Tx) {
	tx.Rollback()
}

// SaveSnapshot writes c as a new snapshot and drops every older one.
// It returns the new snapshot ID.
func SaveSnapshot(db *sql.DB, c *home.Collection) (string, error) {
	tx, err := StartTransaction(db)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := insertSnapshotWithTx(tx, id, c); err != nil {
		RollbackTransaction(tx)
		return "", err
	}
	if err := pruneSnapshotsWithTx(tx, id); err != nil {
		RollbackTransaction(tx)
		return "", err
	}
	if err := CommitTransaction(tx); err != nil {
		return "", err
	}
	return id, nil
}

func insertSnapshotWithTx(tx *sql.Tx, id string, c *home.Collection) error {
	_, err := tx.Exec(`INSERT INTO snapshots (id, created_at) VALUES (?, ?)`, id, time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for hi, h := range c.Homes() {
		_, err = tx.Exec(`INSERT INTO homes (snapshot_id, position, capacity) VALUES (?, ?, ?)`, id, hi, h.Capacity())
		if err != nil {
			return fmt.Errorf("insert home %d: %w", hi, err)
		}

		for di, d := range h.Devices() {
			cfg, ok := d.(device.Configurable)
			if !ok {
				return fmt.Errorf("home %d device %d: %s has no option to persist", hi, di, d.Kind())
			}
			_, err = tx.Exec(`INSERT INTO devices (snapshot_id, home_position, position, kind, option_value, switched_on) VALUES (?, ?, ?, ?, ?, ?)`,
				id, hi, di, string(d.Kind()), cfg.Option(), d.IsOn())
			if err != nil {
				return fmt.Errorf("insert home %d device %d: %w", hi, di, err)
			}
		}
	}
	return nil
}

func pruneSnapshotsWithTx(tx *sql.Tx, keep string) error {
	for _, stmt := range []string{
		`DELETE FROM devices WHERE snapshot_id != ?`,
		`DELETE FROM homes WHERE snapshot_id != ?`,
		`DELETE FROM snapshots WHERE id != ?`,
	} {
		if _, err := tx.Exec(stmt, keep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}
	return nil
}
