package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsimonsguy/smart-home/internal/device"
)

// doorbell is switchable but has no option to configure.
type doorbell struct{ on bool }

func (d *doorbell) Kind() device.Kind { return "Doorbell" }
func (d *doorbell) IsOn() bool        { return d.on }
func (d *doorbell) Toggle()           { d.on = !d.on }
func (d *doorbell) String() string    { return "Doorbell" }

func mixedHome(t *testing.T) *Home {
	t.Helper()
	h := New(DefaultCapacity)
	plug, err := device.NewSmartPlug(45)
	require.NoError(t, err)
	require.NoError(t, h.AddDevice(plug))
	require.NoError(t, h.AddDevice(device.DefaultSmartOven()))
	require.NoError(t, h.AddDevice(device.DefaultSmartHeater()))
	return h
}

func TestAddDeviceRespectsCapacity(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 10} {
		h := New(capacity)
		for i := 0; i < capacity; i++ {
			require.NoError(t, h.AddDevice(device.DefaultSmartHeater()))
		}
		assert.ErrorIs(t, h.AddDevice(device.DefaultSmartHeater()), ErrCapacityExceeded)
		assert.Equal(t, capacity, h.Len())
	}
}

func TestNegativeCapacityIsEmpty(t *testing.T) {
	h := New(-3)
	assert.Equal(t, 0, h.Capacity())
	assert.ErrorIs(t, h.AddDevice(device.DefaultSmartPlug()), ErrCapacityExceeded)
}

func TestDeviceReturnsReference(t *testing.T) {
	h := mixedHome(t)
	d, err := h.Device(0)
	require.NoError(t, err)
	d.Toggle()

	again, err := h.Device(0)
	require.NoError(t, err)
	assert.True(t, again.IsOn())
}

func TestIndexOutOfRange(t *testing.T) {
	h := mixedHome(t)
	for _, idx := range []int{-1, 3, 100} {
		_, err := h.Device(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, h.ToggleDevice(idx), ErrIndexOutOfRange)
		assert.ErrorIs(t, h.RemoveDevice(idx), ErrIndexOutOfRange)
		assert.ErrorIs(t, h.UpdateOption(idx, 1), ErrIndexOutOfRange)
	}
	assert.Equal(t, 3, h.Len())
}

func TestToggleDevice(t *testing.T) {
	h := mixedHome(t)
	require.NoError(t, h.ToggleDevice(1))
	d, _ := h.Device(1)
	assert.True(t, d.IsOn())
	require.NoError(t, h.ToggleDevice(1))
	assert.False(t, d.IsOn())
}

func TestRemoveDeviceCompactsIndices(t *testing.T) {
	h := mixedHome(t)
	next, _ := h.Device(1)

	require.NoError(t, h.RemoveDevice(0))
	assert.Equal(t, 2, h.Len())

	got, err := h.Device(0)
	require.NoError(t, err)
	assert.Same(t, next, got)
	assert.Equal(t, device.KindSmartOven, got.Kind())

	require.NoError(t, h.RemoveDevice(1))
	_, err = h.Device(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSwitchAll(t *testing.T) {
	h := mixedHome(t)
	require.NoError(t, h.ToggleDevice(1))
	assert.Equal(t, 1, h.OnCount())

	h.SwitchAllOn()
	for _, d := range h.Devices() {
		assert.True(t, d.IsOn())
	}
	assert.Equal(t, h.Len(), h.OnCount())

	before := h.String()
	h.SwitchAllOn()
	assert.Equal(t, before, h.String())

	h.SwitchAllOff()
	for _, d := range h.Devices() {
		assert.False(t, d.IsOn())
	}
	assert.Equal(t, 0, h.OnCount())

	empty := New(DefaultCapacity)
	empty.SwitchAllOn()
	empty.SwitchAllOff()
	assert.Equal(t, 0, empty.Len())
}

func TestUpdateOptionDispatch(t *testing.T) {
	h := mixedHome(t)

	require.NoError(t, h.UpdateOption(0, 100))
	require.NoError(t, h.UpdateOption(1, 200))
	require.NoError(t, h.UpdateOption(2, 4))

	plug, _ := h.Device(0)
	oven, _ := h.Device(1)
	heater, _ := h.Device(2)
	assert.Equal(t, 100, plug.(*device.SmartPlug).ConsumptionRate())
	assert.Equal(t, 200, oven.(*device.SmartOven).Temperature())
	assert.Equal(t, 4, heater.(*device.SmartHeater).Setting())

	err := h.UpdateOption(2, 6)
	assert.ErrorIs(t, err, device.ErrInvalidOption)
	var optErr *device.OptionError
	assert.ErrorAs(t, err, &optErr)
	assert.Equal(t, 4, heater.(*device.SmartHeater).Setting())
}

func TestUpdateOptionUnsupported(t *testing.T) {
	h := New(2)
	require.NoError(t, h.AddDevice(&doorbell{}))
	assert.ErrorIs(t, h.UpdateOption(0, 1), ErrUnsupportedOption)
}

func TestString(t *testing.T) {
	h := mixedHome(t)
	require.NoError(t, h.ToggleDevice(2))

	want := "SmartHome with 3 device(s):" +
		"\n1- SmartPlug is off with a consumption rate of 45" +
		"\n2- SmartOven is off with a temperature of 150" +
		"\n3- SmartHeater is on with a setting of 2"
	assert.Equal(t, want, h.String())
	assert.Equal(t, "SmartHome with 0 device(s):", New(1).String())
}

func TestCollection(t *testing.T) {
	c := NewCollection()
	assert.Equal(t, 0, c.Len())

	first, err := c.AddDefaultHome(DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Len())
	assert.Equal(t, DefaultCapacity, first.Capacity())

	second := New(4)
	c.Add(second)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.DeviceCount())

	got, err := c.Home(1)
	require.NoError(t, err)
	assert.Same(t, second, got)

	require.NoError(t, c.Delete(0))
	got, err = c.Home(0)
	require.NoError(t, err)
	assert.Same(t, second, got)

	assert.ErrorIs(t, c.Delete(1), ErrIndexOutOfRange)
	_, err = c.Home(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAddDefaultHomeCapacity(t *testing.T) {
	c := NewCollection()

	h, err := c.AddDefaultHome(4)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Capacity())
	assert.Equal(t, 3, h.Len())

	_, err = c.AddDefaultHome(2)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 1, c.Len(), "a home that cannot hold the defaults is not appended")
}
