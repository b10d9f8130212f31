package treestore

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/parse"
)

type options struct {
	format    format.Format
	hasFormat bool
	parse     []parse.ParseOption
	encode    []encode.EncodeOption
}

type Option func(*options)

// WithFormat selects the format for one call.  Without it, Load and Save
// use the text format and the file variants guess from the file name.
func WithFormat(f format.Format) Option {
	return func(o *options) {
		o.format = f
		o.hasFormat = true
	}
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *options) { o.parse = append(o.parse, opts...) }
}

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *options) { o.encode = append(o.encode, opts...) }
}

func newOptions(opts []Option) *options {
	res := &options{format: format.TextFormat}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func (o *options) guess(path string) {
	if o.hasFormat {
		return
	}
	if f, ok := format.FromPath(path); ok {
		o.format = f
	}
}

func (o *options) parseOpts() []parse.ParseOption {
	return append([]parse.ParseOption{parse.ParseFormat(o.format)}, o.parse...)
}

func (o *options) encodeOpts() []encode.EncodeOption {
	return append([]encode.EncodeOption{encode.EncodeFormat(o.format)}, o.encode...)
}

// Load reads one document from r.
func Load(r io.Reader, opts ...Option) (*ir.Node, error) {
	o := newOptions(opts)
	return parse.ParseReader(r, o.parseOpts()...)
}

// Save writes node and its subtree to w.
func Save(node *ir.Node, w io.Writer, opts ...Option) error {
	o := newOptions(opts)
	return encode.Encode(node, w, o.encodeOpts()...)
}

// LoadFile reads the document stored in the file at path.  The whole file
// must hold exactly one document.
func LoadFile(path string, opts ...Option) (*ir.Node, error) {
	o := newOptions(opts)
	o.guess(path)
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, o.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// SaveFile writes node to the file at path, replacing its contents.  The
// file is left untouched if node cannot be encoded.
func SaveFile(node *ir.Node, path string, opts ...Option) error {
	o := newOptions(opts)
	o.guess(path)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, o.encodeOpts()...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
