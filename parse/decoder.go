package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/ir"
)

// Decoder reads consecutive documents from a stream.
type Decoder struct {
	opts *parseOpts
	p    *parser
	yd   *yaml.Decoder
	err  error
}

func NewDecoder(r io.Reader, opts ...ParseOption) *Decoder {
	pOpts := newParseOpts(opts)
	d := &Decoder{opts: pOpts}
	switch pOpts.format {
	case format.TextFormat:
		d.p = newParser(r, pOpts)
	case format.YAMLFormat, format.JSONFormat:
		d.yd = yaml.NewDecoder(r, yaml.UseOrderedMap())
	default:
		d.err = fmt.Errorf("%w: parsing %s", format.ErrUnsupported, pOpts.format)
	}
	return d
}

// Decode returns the next document, or io.EOF once the stream holds no
// more documents.  After any other error, the decoder is done and
// returns that error again.
func (d *Decoder) Decode() (*ir.Node, error) {
	if d.err != nil {
		return nil, d.err
	}
	var (
		node *ir.Node
		err  error
	)
	if d.yd != nil {
		node, err = d.decodeYAML()
	} else {
		node, err = d.p.document()
	}
	if errors.Is(err, io.EOF) {
		d.err = io.EOF
		return nil, io.EOF
	}
	if err != nil {
		d.err = err
		return d.opts.report(nil, err)
	}
	return node, nil
}

func (d *Decoder) decodeYAML() (*ir.Node, error) {
	var doc any
	if err := d.yd.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return fromDoc(doc, d.opts)
}
