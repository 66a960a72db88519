package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/thatsimonsguy/smart-home/internal/controller"
	"github.com/thatsimonsguy/smart-home/internal/device"
	"github.com/thatsimonsguy/smart-home/internal/home"
)

var errUsage = errors.New("invalid usage")

// run executes one command against ctrl and returns what to print.
// Positions on the command line are 1-based.
func run(ctrl *controller.Controller, capacity int, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: no command given", errUsage)
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return ctrl.Describe(), nil

	case "show":
		h, err := positions(rest, 1)
		if err != nil {
			return "", err
		}
		var out string
		err = ctrl.View(h[0], func(h *home.Home) error {
			out = h.String()
			return nil
		})
		return out, err

	case "add-home":
		idx, err := ctrl.AddDefaultHome(capacity)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added Smart Home %d", idx+1), nil

	case "add-empty-home":
		idx := ctrl.AddHome(capacity)
		return fmt.Sprintf("Added Smart Home %d", idx+1), nil

	case "delete-home":
		h, err := positions(rest, 1)
		if err != nil {
			return "", err
		}
		if err := ctrl.DeleteHome(h[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted Smart Home %d", h[0]+1), nil

	case "add-device":
		if len(rest) < 2 || len(rest) > 3 {
			return "", fmt.Errorf("%w: add-device HOME KIND [VALUE]", errUsage)
		}
		h, err := positions(rest[:1], 1)
		if err != nil {
			return "", err
		}
		d, err := buildDevice(rest[1:])
		if err != nil {
			return "", err
		}
		err = ctrl.Update(h[0], func(h *home.Home) error { return h.AddDevice(d) })
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s", d), nil

	case "remove-device":
		p, err := positions(rest, 2)
		if err != nil {
			return "", err
		}
		return "Device removed", ctrl.Update(p[0], func(h *home.Home) error { return h.RemoveDevice(p[1]) })

	case "toggle":
		p, err := positions(rest, 2)
		if err != nil {
			return "", err
		}
		var out string
		err = ctrl.Update(p[0], func(h *home.Home) error {
			if err := h.ToggleDevice(p[1]); err != nil {
				return err
			}
			d, _ := h.Device(p[1])
			out = d.String()
			return nil
		})
		return out, err

	case "all-on", "all-off":
		h, err := positions(rest, 1)
		if err != nil {
			return "", err
		}
		var out string
		err = ctrl.Update(h[0], func(h *home.Home) error {
			if cmd == "all-on" {
				h.SwitchAllOn()
			} else {
				h.SwitchAllOff()
			}
			out = h.String()
			return nil
		})
		return out, err

	case "set-option":
		if len(rest) != 3 {
			return "", fmt.Errorf("%w: set-option HOME DEVICE VALUE", errUsage)
		}
		p, err := positions(rest[:2], 2)
		if err != nil {
			return "", err
		}
		var out string
		err = ctrl.Update(p[0], func(h *home.Home) error {
			d, err := h.Device(p[1])
			if err != nil {
				return err
			}
			v, err := device.ParseOption(d.Kind(), rest[2])
			if err != nil {
				return err
			}
			if err := h.UpdateOption(p[1], v); err != nil {
				return err
			}
			out = d.String()
			return nil
		})
		return out, err

	default:
		return "", fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// positions parses exactly n 1-based positions into 0-based indices.
func positions(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d position(s), got %d", errUsage, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out[i] = v - 1
	}
	return out, nil
}

func buildDevice(args []string) (device.Device, error) {
	kind, err := device.ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return device.NewDefault(kind)
	}
	v, err := device.ParseOption(kind, args[1])
	if err != nil {
		return nil, err
	}
	return device.New(kind, v)
}
