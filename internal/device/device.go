package device

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind string

const (
	KindSmartPlug   Kind = "SmartPlug"
	KindSmartOven   Kind = "SmartOven"
	KindSmartHeater Kind = "SmartHeater"
)

// OptionSpec describes the single bounded option a kind carries.
type OptionSpec struct {
	Label   string
	Min     int
	Max     int
	Default int
}

func (s OptionSpec) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

var specs = map[Kind]OptionSpec{
	KindSmartPlug:   {Label: "consumption rate", Min: 0, Max: 150, Default: 45},
	KindSmartOven:   {Label: "temperature", Min: 0, Max: 260, Default: 150},
	KindSmartHeater: {Label: "setting", Min: 0, Max: 5, Default: 2},
}

// Kinds returns every known kind in display order.
func Kinds() []Kind {
	return []Kind{KindSmartPlug, KindSmartOven, KindSmartHeater}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if _, ok := specs[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Spec returns the option bounds for k. Unknown kinds yield the zero spec.
func (k Kind) Spec() OptionSpec {
	return specs[k]
}

// Device is anything a home can hold and switch.
type Device interface {
	Kind() Kind
	IsOn() bool
	Toggle()
	String() string
}

// Configurable devices expose one bounded integer option.
type Configurable interface {
	Option() int
	SetOption(v int) error
}

type base struct {
	kind  Kind
	on    bool
	value int
}

func newBase(k Kind, v int) (base, error) {
	if err := check(k, v); err != nil {
		return base{}, err
	}
	return base{kind: k, value: v}, nil
}

func check(k Kind, v int) error {
	spec := k.Spec()
	if !spec.Contains(v) {
		return &OptionError{Kind: k, Value: strconv.Itoa(v), Min: spec.Min, Max: spec.Max}
	}
	return nil
}

func (b *base) Kind() Kind  { return b.kind }
func (b *base) IsOn() bool  { return b.on }
func (b *base) Toggle()     { b.on = !b.on }
func (b *base) Option() int { return b.value }

func (b *base) SetOption(v int) error {
	if err := check(b.kind, v); err != nil {
		return err
	}
	b.value = v
	return nil
}

func (b *base) String() string {
	status := "off"
	if b.on {
		status = "on"
	}
	return fmt.Sprintf("%s is %s with a %s of %d", b.kind, status, b.kind.Spec().Label, b.value)
}

type SmartPlug struct{ base }

func NewSmartPlug(consumptionRate int) (*SmartPlug, error) {
	b, err := newBase(KindSmartPlug, consumptionRate)
	if err != nil {
		return nil, err
	}
	return &SmartPlug{b}, nil
}

func DefaultSmartPlug() *SmartPlug {
	return &SmartPlug{base{kind: KindSmartPlug, value: KindSmartPlug.Spec().Default}}
}

func (p *SmartPlug) ConsumptionRate() int              { return p.value }
func (p *SmartPlug) SetConsumptionRate(rate int) error { return p.SetOption(rate) }

type SmartOven struct{ base }

func NewSmartOven(temperature int) (*SmartOven, error) {
	b, err := newBase(KindSmartOven, temperature)
	if err != nil {
		return nil, err
	}
	return &SmartOven{b}, nil
}

func DefaultSmartOven() *SmartOven {
	return &SmartOven{base{kind: KindSmartOven, value: KindSmartOven.Spec().Default}}
}

func (o *SmartOven) Temperature() int              { return o.value }
func (o *SmartOven) SetTemperature(temp int) error { return o.SetOption(temp) }

type SmartHeater struct{ base }

func NewSmartHeater(setting int) (*SmartHeater, error) {
	b, err := newBase(KindSmartHeater, setting)
	if err != nil {
		return nil, err
	}
	return &SmartHeater{b}, nil
}

func DefaultSmartHeater() *SmartHeater {
	return &SmartHeater{base{kind: KindSmartHeater, value: KindSmartHeater.Spec().Default}}
}

func (h *SmartHeater) Setting() int                 { return h.value }
func (h *SmartHeater) SetSetting(setting int) error { return h.SetOption(setting) }

// New builds a device of kind k with the given option value.
func New(k Kind, option int) (Device, error) {
	if _, ok := specs[k]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	b, err := newBase(k, option)
	if err != nil {
		return nil, err
	}
	switch k {
	case KindSmartPlug:
		return &SmartPlug{b}, nil
	case KindSmartOven:
		return &SmartOven{b}, nil
	default:
		return &SmartHeater{b}, nil
	}
}

// NewDefault builds a device of kind k with its default option.
func NewDefault(k Kind) (Device, error) {
	switch k {
	case KindSmartPlug:
		return DefaultSmartPlug(), nil
	case KindSmartOven:
		return DefaultSmartOven(), nil
	case KindSmartHeater:
		return DefaultSmartHeater(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}

// ParseOption converts user text into an option value for kind k.
// Non-integers and out-of-range values both fail with an *OptionError.
func ParseOption(k Kind, s string) (int, error) {
	spec := k.Spec()
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &OptionError{Kind: k, Value: s, Min: spec.Min, Max: spec.Max}
	}
	if err := check(k, v); err != nil {
		return 0, err
	}
	return v, nil
}
