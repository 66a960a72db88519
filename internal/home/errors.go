package home

import "errors"

var (
	ErrCapacityExceeded  = errors.New("home: capacity exceeded")
	ErrIndexOutOfRange   = errors.New("home: index out of range")
	ErrUnsupportedOption = errors.New("home: device has no recognized option")
)
