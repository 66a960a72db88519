package home

import (
	"fmt"
	"strings"

	"github.com/thatsimonsguy/smart-home/internal/device"
)

const DefaultCapacity = 10

// Home is an ordered, bounded set of devices addressed by position.
// It is not safe for concurrent use.
type Home struct {
	devices  []device.Device
	capacity int
}

func New(capacity int) *Home {
	if capacity < 0 {
		capacity = 0
	}
	return &Home{capacity: capacity}
}

func (h *Home) Len() int      { return len(h.devices) }
func (h *Home) Capacity() int { return h.capacity }

// Devices returns the devices in index order. The slice is a copy but the
// devices are shared with the home.
func (h *Home) Devices() []device.Device {
	out := make([]device.Device, len(h.devices))
	copy(out, h.devices)
	return out
}

// OnCount is the number of devices currently switched on.
func (h *Home) OnCount() int {
	n := 0
	for _, d := range h.devices {
		if d.IsOn() {
			n++
		}
	}
	return n
}

func (h *Home) AddDevice(d device.Device) error {
	if len(h.devices) >= h.capacity {
		return fmt.Errorf("%w: maximum of %d reached", ErrCapacityExceeded, h.capacity)
	}
	h.devices = append(h.devices, d)
	return nil
}

func (h *Home) Device(index int) (device.Device, error) {
	if err := h.checkIndex(index); err != nil {
		return nil, err
	}
	return h.devices[index], nil
}

func (h *Home) ToggleDevice(index int) error {
	d, err := h.Device(index)
	if err != nil {
		return err
	}
	d.Toggle()
	return nil
}

// RemoveDevice deletes the device at index; later devices shift down by one.
func (h *Home) RemoveDevice(index int) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}
	copy(h.devices[index:], h.devices[index+1:])
	h.devices[len(h.devices)-1] = nil
	h.devices = h.devices[:len(h.devices)-1]
	return nil
}

func (h *Home) SwitchAllOn()  { h.switchAll(true) }
func (h *Home) SwitchAllOff() { h.switchAll(false) }

func (h *Home) switchAll(on bool) {
	for _, d := range h.devices {
		if d.IsOn() != on {
			d.Toggle()
		}
	}
}

// UpdateOption sets the option of the device at index. Option errors from
// the device are returned unwrapped.
func (h *Home) UpdateOption(index, value int) error {
	d, err := h.Device(index)
	if err != nil {
		return err
	}
	c, ok := d.(device.Configurable)
	if !ok {
		return fmt.Errorf("%w: %s at index %d", ErrUnsupportedOption, d.Kind(), index)
	}
	return c.SetOption(value)
}

func (h *Home) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SmartHome with %d device(s):", len(h.devices))
	for i, d := range h.devices {
		fmt.Fprintf(&b, "\n%d- %s", i+1, d)
	}
	return b.String()
}

func (h *Home) checkIndex(index int) error {
	if index < 0 || index >= len(h.devices) {
		return fmt.Errorf("%w: device %d of %d", ErrIndexOutOfRange, index, len(h.devices))
	}
	return nil
}
