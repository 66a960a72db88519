package db

import (
	"io"

	"github.com/thatsimonsguy/smart-home/internal/store"
)

// ImportFlatFileCLI loads a flat record file and saves it as the newest
// snapshot in the database at dbPath.
func ImportFlatFileCLI(dbPath, flatPath string, capacity int) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	c, err := store.New(flatPath, capacity).Load()
	if err != nil {
		return 0, err
	}
	if err := NewStore(conn).Save(c); err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// ExportCLI writes the newest snapshot in dbPath to w in the flat format.
func ExportCLI(dbPath string, w io.Writer) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := NewStore(conn).Load()
	if err != nil {
		return err
	}
	return store.Encode(w, c)
}
