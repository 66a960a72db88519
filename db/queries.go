package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/thatsimonsguy/smart-home/internal/device"
	"github.com/thatsimonsguy/smart-home/internal/home"
)

// GetLatestSnapshotID returns the newest snapshot ID, or "" if none exist.
func GetLatestSnapshotID(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM snapshots ORDER BY seq DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return id, nil
}

// GetSnapshot rebuilds the collection stored under id. Device rows must be
// contiguous per home and pass device validation.
func GetSnapshot(db *sql.DB, id string) (*home.Collection, error) {
	homes, err := getHomes(db, id)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT home_position, position, kind, option_value, switched_on FROM devices WHERE snapshot_id = ? ORDER BY home_position, position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var homePos, pos, option int
		var kind string
		var on bool
		if err := rows.Scan(&homePos, &pos, &kind, &option, &on); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}

		if homePos < 0 || homePos >= len(homes) {
			return nil, fmt.Errorf("device %d references missing home %d", pos, homePos)
		}
		h := homes[homePos]
		if pos != h.Len() {
			return nil, fmt.Errorf("home %d: device position %d out of sequence", homePos, pos)
		}

		d, err := device.New(device.Kind(kind), option)
		if err != nil {
			return nil, fmt.Errorf("home %d device %d: %w", homePos, pos, err)
		}
		if on {
			d.Toggle()
		}
		if err := h.AddDevice(d); err != nil {
			return nil, fmt.Errorf("home %d: %w", homePos, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read devices: %w", err)
	}

	return home.NewCollection(homes...), nil
}

func getHomes(db *sql.DB, id string) ([]*home.Home, error) {
	rows, err := db.Query(`SELECT position, capacity FROM homes WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query homes: %w", err)
	}
	defer rows.Close()

	var homes []*home.Home
	for rows.Next() {
		var pos, capacity int
		if err := rows.Scan(&pos, &capacity); err != nil {
			return nil, fmt.Errorf("failed to scan home: %w", err)
		}
		if pos != len(homes) {
			return nil, fmt.Errorf("home position %d out of sequence", pos)
		}
		homes = append(homes, home.New(capacity))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read homes: %w", err)
	}
	return homes, nil
}
