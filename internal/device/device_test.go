package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartPlug(t *testing.T) {
	plug, err := NewSmartPlug(45)
	require.NoError(t, err)

	assert.False(t, plug.IsOn())
	plug.Toggle()
	assert.True(t, plug.IsOn())

	require.NoError(t, plug.SetConsumptionRate(75))
	assert.Equal(t, 75, plug.ConsumptionRate())
	assert.Equal(t, "SmartPlug is on with a consumption rate of 75", plug.String())

	err = plug.SetConsumptionRate(200)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, 75, plug.ConsumptionRate())
}

func TestConstructorsRejectOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{"plug below", func() error { _, err := NewSmartPlug(-1); return err }},
		{"plug above", func() error { _, err := NewSmartPlug(151); return err }},
		{"oven below", func() error { _, err := NewSmartOven(-1); return err }},
		{"oven above", func() error { _, err := NewSmartOven(261); return err }},
		{"heater below", func() error { _, err := NewSmartHeater(-1); return err }},
		{"heater above", func() error { _, err := NewSmartHeater(6); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.build(), ErrInvalidOption)
		})
	}
}

func TestBoundariesAccepted(t *testing.T) {
	for _, k := range Kinds() {
		spec := k.Spec()
		for _, v := range []int{spec.Min, spec.Max} {
			d, err := New(k, v)
			require.NoError(t, err, "%s %d", k, v)
			assert.Equal(t, v, d.(Configurable).Option())
		}
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 45, DefaultSmartPlug().ConsumptionRate())
	assert.Equal(t, 150, DefaultSmartOven().Temperature())
	assert.Equal(t, 2, DefaultSmartHeater().Setting())

	for _, k := range Kinds() {
		d, err := NewDefault(k)
		require.NoError(t, err)
		assert.Equal(t, k, d.Kind())
		assert.False(t, d.IsOn())
	}
}

func TestSetOptionKeepsPriorValue(t *testing.T) {
	oven := DefaultSmartOven()
	require.NoError(t, oven.SetTemperature(200))

	err := oven.SetTemperature(300)
	var optErr *OptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, KindSmartOven, optErr.Kind)
	assert.Equal(t, "300", optErr.Value)
	assert.Equal(t, 0, optErr.Min)
	assert.Equal(t, 260, optErr.Max)
	assert.Equal(t, 200, oven.Temperature())

	heater := DefaultSmartHeater()
	assert.ErrorIs(t, heater.SetSetting(6), ErrInvalidOption)
	assert.Equal(t, 2, heater.Setting())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	for _, k := range Kinds() {
		spec := k.Spec()
		for v := spec.Min; v <= spec.Max; v += 5 {
			d, err := New(k, v)
			require.NoError(t, err)
			before := d.IsOn()
			d.Toggle()
			d.Toggle()
			assert.Equal(t, before, d.IsOn())
		}
	}
}

func TestString(t *testing.T) {
	oven := DefaultSmartOven()
	assert.Equal(t, "SmartOven is off with a temperature of 150", oven.String())

	heater := DefaultSmartHeater()
	heater.Toggle()
	assert.Equal(t, "SmartHeater is on with a setting of 2", heater.String())
}

func TestParseOption(t *testing.T) {
	v, err := ParseOption(KindSmartHeater, " 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = ParseOption(KindSmartHeater, "2.5")
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = ParseOption(KindSmartPlug, "abc")
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = ParseOption(KindSmartOven, "261")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("SmartOven")
	require.NoError(t, err)
	assert.Equal(t, KindSmartOven, k)

	_, err = ParseKind("SmartFridge")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(Kind("SmartFridge"), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
