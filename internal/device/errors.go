package device

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOption is matched by every *OptionError.
	ErrInvalidOption = errors.New("device: invalid option")

	ErrUnknownKind = errors.New("device: unknown kind")
)

// OptionError reports a rejected option value along with the range that
// would have been accepted.
type OptionError struct {
	Kind  Kind
	Value string
	Min   int
	Max   int
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("device: %s %s must be a whole number between %d and %d, got %q",
		e.Kind, e.Kind.Spec().Label, e.Min, e.Max, e.Value)
}

func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}
