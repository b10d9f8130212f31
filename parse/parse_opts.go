package parse

import (
	"io"

	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/token"
)

const DefaultMaxDepth = 10000

type parseOpts struct {
	format   format.Format
	diag     io.Writer
	maxDepth int
	maxToken int
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.TextFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.maxToken > 0 {
		return []token.TokenOpt{token.TokenMaxSize(o.maxToken)}
	}
	return nil
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseDiagnostics makes the parser write a line describing each error to
// w, in addition to returning it.
func ParseDiagnostics(w io.Writer) ParseOption {
	return func(o *parseOpts) { o.diag = w }
}

// ParseMaxDepth bounds the combined nesting of nodes and arrays.  n <= 0
// removes the bound.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseTokenMaxSize truncates tokens longer than n bytes, see
// token.TokenMaxSize.
func ParseTokenMaxSize(n int) ParseOption {
	return func(o *parseOpts) { o.maxToken = n }
}
