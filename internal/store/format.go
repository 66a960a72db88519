package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/thatsimonsguy/smart-home/internal/device"
	"github.com/thatsimonsguy/smart-home/internal/home"
)

// The record layout is:
//
//	<home_count>
//	<device_count>
//	<kind>,<option>,<on 1|0>
//	...
//
// repeated per home. Nothing after the last declared row is read.

func Encode(w io.Writer, c *home.Collection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{strconv.Itoa(c.Len())}); err != nil {
		return err
	}
	for hi, h := range c.Homes() {
		if err := cw.Write([]string{strconv.Itoa(h.Len())}); err != nil {
			return err
		}
		for di, d := range h.Devices() {
			cfg, ok := d.(device.Configurable)
			if !ok {
				return fmt.Errorf("home %d device %d: %s has no option to persist", hi, di, d.Kind())
			}
			flag := "0"
			if d.IsOn() {
				flag = "1"
			}
			if err := cw.Write([]string{string(d.Kind()), strconv.Itoa(cfg.Option()), flag}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decode parses a collection, giving every home the supplied capacity.
// It returns nil on any error.
func Decode(r io.Reader, capacity int) (*home.Collection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	d := &decoder{r: cr}

	homeCount, err := d.count("home count")
	if err != nil {
		return nil, err
	}

	c := home.NewCollection()
	for i := 0; i < homeCount; i++ {
		deviceCount, err := d.count(fmt.Sprintf("device count for home %d", i+1))
		if err != nil {
			return nil, err
		}

		h := home.New(capacity)
		for j := 0; j < deviceCount; j++ {
			dev, err := d.device()
			if err != nil {
				return nil, fmt.Errorf("home %d device %d: %w", i+1, j+1, err)
			}
			if err := h.AddDevice(dev); err != nil {
				return nil, fmt.Errorf("home %d: %w", i+1, err)
			}
		}
		c.Add(h)
	}
	return c, nil
}

type decoder struct {
	r *csv.Reader
}

func (d *decoder) next() ([]string, int, error) {
	rec, err := d.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, 0, err
	}
	line, _ := d.r.FieldPos(0)
	return rec, line, nil
}

func (d *decoder) count(what string) (int, error) {
	rec, line, err := d.next()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	if len(rec) != 1 {
		return 0, fmt.Errorf("line %d: %s: expected 1 field, got %d", line, what, len(rec))
	}
	n, err := strconv.Atoi(rec[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: %s: invalid value %q", line, what, rec[0])
	}
	return n, nil
}

func (d *decoder) device() (device.Device, error) {
	rec, line, err := d.next()
	if err != nil {
		return nil, err
	}
	if len(rec) != 3 {
		return nil, fmt.Errorf("line %d: expected 3 fields, got %d", line, len(rec))
	}

	kind, err := device.ParseKind(rec[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	option, err := device.ParseOption(kind, rec[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	dev, err := device.New(kind, option)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	switch rec[2] {
	case "1":
		dev.Toggle()
	case "0":
	default:
		return nil, fmt.Errorf("line %d: on flag must be 0 or 1, got %q", line, rec[2])
	}
	return dev, nil
}
