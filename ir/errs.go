package ir

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrEmpty           = errors.New("empty value list")
	ErrNilValue        = errors.New("nil value")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrCycle           = errors.New("node would contain itself")
)
