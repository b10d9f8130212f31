// Package format names the serialization formats a tree can be loaded from
// and saved to.
//
// The format is always chosen per call (see parse.ParseFormat and
// encode.EncodeFormat); there is no process wide default.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	BinaryFormat
	YAMLFormat
	JSONFormat
)

var (
	ErrBadFormat   = errors.New("bad format")
	ErrUnsupported = errors.New("unsupported format")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"ts":   TextFormat,
		"b":    BinaryFormat,
		"bin":  BinaryFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case BinaryFormat:
		return []byte("bin"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".ts"
	case BinaryFormat:
		return ".tsb"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// FromPath guesses a format from the extension of a file path.  Unknown
// extensions are reported as TextFormat with ok false.
func FromPath(path string) (f Format, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".txt":
		return TextFormat, true
	case ".tsb":
		return BinaryFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".json":
		return JSONFormat, true
	}
	return TextFormat, false
}

// AllFormats returns all formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat, BinaryFormat}
}
