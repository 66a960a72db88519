package controller

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/smart-home/internal/datadog"
	"github.com/thatsimonsguy/smart-home/internal/home"
)

// Store is implemented by the flat file store and the SQLite store.
type Store interface {
	Load() (*home.Collection, error)
	Save(c *home.Collection) error
}

// Controller owns the in-memory homes and serialises every access to them.
type Controller struct {
	mu    sync.Mutex
	homes *home.Collection
	store Store
	dirty bool
}

func New(store Store) *Controller {
	return &Controller{
		homes: home.NewCollection(),
		store: store,
	}
}

// Load replaces the in-memory homes with whatever the store returns. On a
// failed load the store hands back an empty collection which is kept.
func (c *Controller) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	homes, err := c.store.Load()
	c.homes = homes
	c.dirty = false

	if err != nil {
		datadog.Incr("store.load_failed")
		log.Warn().Err(err).Msg("Failed to load saved homes, starting empty")
		return err
	}

	c.reportCounts()
	log.Info().
		Int("homes", c.homes.Len()).
		Int("devices", c.homes.DeviceCount()).
		Msg("Loaded smart homes")
	return nil
}

// Save writes the current homes to the store. The lock is held for the
// whole write so the snapshot is consistent.
func (c *Controller) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Save(c.homes); err != nil {
		log.Error().Err(err).Msg("Failed to save smart homes")
		return err
	}
	c.dirty = false

	datadog.Incr("store.save")
	log.Info().Int("homes", c.homes.Len()).Msg("Smart homes saved")
	return nil
}

// Dirty reports whether anything changed since the last load or save.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

func (c *Controller) HomeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.homes.Len()
}

// AddHome appends an empty home and returns its index.
func (c *Controller) AddHome(capacity int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.homes.Add(home.New(capacity))
	c.changed()
	idx := c.homes.Len() - 1
	log.Info().Int("home", idx).Int("capacity", capacity).Msg("Added empty home")
	return idx
}

// AddDefaultHome appends a home seeded with one device of each kind.
func (c *Controller) AddDefaultHome(capacity int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.homes.AddDefaultHome(capacity); err != nil {
		return 0, err
	}
	c.changed()
	idx := c.homes.Len() - 1
	log.Info().Int("home", idx).Int("capacity", capacity).Msg("Added home with default devices")
	return idx, nil
}

func (c *Controller) DeleteHome(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.homes.Delete(index); err != nil {
		return err
	}
	c.changed()
	log.Info().Int("home", index).Msg("Deleted home")
	return nil
}

// Update runs fn against the home at index while holding the lock.
// The home is marked changed only when fn succeeds.
func (c *Controller) Update(index int, fn func(h *home.Home) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.homes.Home(index)
	if err != nil {
		return err
	}
	if err := fn(h); err != nil {
		log.Debug().Err(err).Int("home", index).Msg("Home update rejected")
		return err
	}
	c.changed()
	return nil
}

// View runs fn against the home at index without marking it changed.
func (c *Controller) View(index int, fn func(h *home.Home) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.homes.Home(index)
	if err != nil {
		return err
	}
	return fn(h)
}

// Describe renders every home, numbered from 1.
func (c *Controller) Describe() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.homes.Len() == 0 {
		return "No smart homes."
	}
	var b strings.Builder
	for i, h := range c.homes.Homes() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Smart Home %d\nDevices: %d total, %d on\n%s", i+1, h.Len(), h.OnCount(), h)
	}
	return b.String()
}

func (c *Controller) changed() {
	c.dirty = true
	c.reportCounts()
}

func (c *Controller) reportCounts() {
	datadog.Gauge("homes.count", float64(c.homes.Len()))
	datadog.Gauge("devices.count", float64(c.homes.DeviceCount()))
}
