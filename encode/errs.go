package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	// ErrUnrepresentable is returned for trees whose text form would not
	// read back as the same tree.
	ErrUnrepresentable = errors.New("unrepresentable")
)
