package home

import (
	"fmt"

	"github.com/thatsimonsguy/smart-home/internal/device"
)

// Collection is an unbounded ordered list of homes and is the unit the
// stores persist.
type Collection struct {
	homes []*Home
}

func NewCollection(homes ...*Home) *Collection {
	return &Collection{homes: homes}
}

func (c *Collection) Len() int { return len(c.homes) }

func (c *Collection) Homes() []*Home {
	out := make([]*Home, len(c.homes))
	copy(out, c.homes)
	return out
}

func (c *Collection) Add(h *Home) {
	c.homes = append(c.homes, h)
}

// AddDefaultHome appends a home of the given capacity holding one plug, one
// oven and one heater at their default options. Nothing is appended when the
// capacity cannot fit all three.
func (c *Collection) AddDefaultHome(capacity int) (*Home, error) {
	h := New(capacity)
	for _, k := range device.Kinds() {
		d, err := device.NewDefault(k)
		if err != nil {
			return nil, err
		}
		if err := h.AddDevice(d); err != nil {
			return nil, err
		}
	}
	c.Add(h)
	return h, nil
}

func (c *Collection) Home(index int) (*Home, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}
	return c.homes[index], nil
}

// Delete drops the home at index. Its devices go with it.
func (c *Collection) Delete(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.homes = append(c.homes[:index], c.homes[index+1:]...)
	return nil
}

// DeviceCount totals devices across every home.
func (c *Collection) DeviceCount() int {
	n := 0
	for _, h := range c.homes {
		n += h.Len()
	}
	return n
}

func (c *Collection) checkIndex(index int) error {
	if index < 0 || index >= len(c.homes) {
		return fmt.Errorf("%w: home %d of %d", ErrIndexOutOfRange, index, len(c.homes))
	}
	return nil
}
