package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/thatsimonsguy/smart-home/internal/home"
)

// ErrPersistence wraps every I/O or format failure reported by a store.
var ErrPersistence = errors.New("store: persistence failure")

// Store keeps a home collection in a single flat record file.
type Store struct {
	path     string
	capacity int
}

// New returns a store for path. Loaded homes get the given capacity since
// the file format does not record one.
func New(path string, capacity int) *Store {
	return &Store{path: path, capacity: capacity}
}

func (s *Store) Path() string { return s.path }

// Load reads the collection from disk. A missing file is an empty
// collection. Any malformed content also yields an empty collection,
// alongside an error; partially read homes are never returned.
func (s *Store) Load() (*home.Collection, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return home.NewCollection(), nil
	}
	if err != nil {
		return home.NewCollection(), fmt.Errorf("%w: open %s: %w", ErrPersistence, s.path, err)
	}
	defer file.Close()

	c, err := Decode(file, s.capacity)
	if err != nil {
		return home.NewCollection(), fmt.Errorf("%w: read %s: %w", ErrPersistence, s.path, err)
	}
	return c, nil
}

// Save writes c to a temporary file and renames it over the target so a
// failed save leaves the previous file intact. A home holding more devices
// than the store capacity is refused before the file is touched.
func (s *Store) Save(c *home.Collection) error {
	for i, h := range c.Homes() {
		if h.Len() > s.capacity {
			return fmt.Errorf("%w: home %d holds %d devices, store capacity is %d: %w",
				ErrPersistence, i+1, h.Len(), s.capacity, home.ErrCapacityExceeded)
		}
	}

	tmpPath := s.path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrPersistence, tmpPath, err)
	}
	if err := Encode(file, c); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, tmpPath, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: sync %s: %w", ErrPersistence, tmpPath, err)
	}
	file.Close()

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %w", ErrPersistence, tmpPath, err)
	}
	return nil
}
