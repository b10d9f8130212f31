package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/treestore/debug"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/token"
)

// Parse parses exactly one document from d.  Anything but the end of input
// after the root node is a syntax error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	switch pOpts.format {
	case format.TextFormat:
	case format.YAMLFormat, format.JSONFormat:
		return pOpts.report(fromYAML(d, pOpts))
	default:
		return nil, fmt.Errorf("%w: parsing %s", format.ErrUnsupported, pOpts.format)
	}
	p := newParser(bytes.NewReader(d), pOpts)
	node, err := p.document()
	if errors.Is(err, io.EOF) {
		err = p.syntaxErr("identifier", "end of input", nil)
	}
	if err != nil {
		return pOpts.report(nil, err)
	}
	tok, err := p.tk.Next()
	if errors.Is(err, io.EOF) {
		return node, nil
	}
	if err != nil {
		return pOpts.report(nil, p.wrapErr(err))
	}
	return pOpts.report(nil, p.unexpected(tok, "end of input"))
}

// ParseReader parses one document from r.  Input following the document
// is left unread, apart from what the underlying buffer holds.  Use a
// Decoder to read several documents from the same stream.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	if pOpts.format != format.TextFormat {
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return Parse(d, opts...)
	}
	p := newParser(r, pOpts)
	node, err := p.document()
	if errors.Is(err, io.EOF) {
		err = p.syntaxErr("identifier", "end of input", nil)
	}
	return pOpts.report(node, err)
}

func (o *parseOpts) report(node *ir.Node, err error) (*ir.Node, error) {
	if err == nil {
		return node, nil
	}
	if o.diag != nil {
		fmt.Fprintf(o.diag, "%s\n", err)
	}
	if debug.Parse() {
		debug.Logf("parse failed: %v\n", err)
	}
	return nil, err
}

type parser struct {
	tk    *token.Tokenizer
	opts  *parseOpts
	depth int
}

func newParser(r io.Reader, opts *parseOpts) *parser {
	return &parser{
		tk:   token.NewTokenizer(r, opts.TokenizeOpts()...),
		opts: opts,
	}
}

// document reads one root node.  It returns io.EOF unwrapped if the input
// is exhausted before the first token.
func (p *parser) document() (*ir.Node, error) {
	tok, err := p.tk.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, p.wrapErr(err)
	}
	if tok.Type != token.TIdent {
		return nil, p.unexpected(tok, "identifier")
	}
	name := tok.String()
	tok, err = p.next("'{'")
	if err != nil {
		return nil, err
	}
	if !tok.IsSymbol('{') {
		return nil, p.unexpected(tok, "'{'")
	}
	p.depth = 0
	return p.node(name)
}

// node reads a node body up to and including its closing brace.
func (p *parser) node(name string) (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	if debug.Parse() {
		debug.Logf("parse node %q depth %d\n", name, p.depth)
	}
	node := ir.NewNode(name)
	for {
		tok, err := p.next("identifier or '}'")
		if err != nil {
			return nil, err
		}
		if tok.Type != token.TIdent {
			if tok.IsSymbol('}') {
				return node, nil
			}
			return nil, p.unexpected(tok, "identifier or '}'")
		}
		id := tok.String()
		tok, err = p.next("'=' or '{'")
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsSymbol('='):
			tok, err = p.next("value")
			if err != nil {
				return nil, err
			}
			v, err := p.value(tok)
			if err != nil {
				return nil, err
			}
			node.AddAttr(ir.NewAttr(id, v))
		case tok.IsSymbol('{'):
			child, err := p.node(id)
			if err != nil {
				return nil, err
			}
			if err := node.AddChild(child); err != nil {
				return nil, err
			}
		default:
			return nil, p.unexpected(tok, "'=' or '{'")
		}
	}
}

func (p *parser) value(tok *token.Token) (ir.Value, error) {
	switch tok.Type {
	case token.TNumber:
		f, err := strconv.ParseFloat(tok.String(), 64)
		if err != nil {
			return nil, p.syntaxErr("number", tok.Describe(), err)
		}
		return ir.FromFloat(f), nil
	case token.TIdent, token.TString:
		return ir.FromString(tok.String()), nil
	}
	switch {
	case tok.IsSymbol('['):
		return p.array(tok, ']')
	case tok.IsSymbol('{'):
		return p.array(tok, '}')
	}
	return nil, p.unexpected(tok, "value")
}

// array reads the elements following open up to the matching closer.
func (p *parser) array(open *token.Token, closer rune) (ir.Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	var vs []ir.Value
	sep := fmt.Sprintf("',' or '%c'", closer)
	for {
		tok, err := p.next("value")
		if err != nil {
			return nil, err
		}
		if len(vs) == 0 && tok.IsSymbol(closer) {
			return nil, &SyntaxError{
				Pos:      open.Pos,
				Expected: "value",
				Found:    tok.Describe(),
				Err:      ErrEmptyArray,
			}
		}
		v, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		tok, err = p.next(sep)
		if err != nil {
			return nil, err
		}
		if tok.IsSymbol(closer) {
			break
		}
		if !tok.IsSymbol(',') {
			return nil, p.unexpected(tok, sep)
		}
	}
	return ir.FromValues(vs...)
}

func (p *parser) push() error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w: more than %d levels at %s", ErrTooDeep, p.opts.maxDepth, p.tk.Pos())
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// next returns the next token, treating the end of input as a syntax
// error where expected was wanted.
func (p *parser) next(expected string) (*token.Token, error) {
	tok, err := p.tk.Next()
	if err == nil {
		return tok, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, p.syntaxErr(expected, "end of input", nil)
	}
	return nil, p.wrapErr(err)
}

func (p *parser) wrapErr(err error) error {
	var tErr *token.TokenizeErr
	if errors.As(err, &tErr) {
		return &SyntaxError{
			Pos:      tErr.Pos,
			Expected: "token",
			Found:    tErr.Err.Error(),
			Err:      tErr,
		}
	}
	return fmt.Errorf("error reading input: %w", err)
}

func (p *parser) syntaxErr(expected, found string, err error) error {
	return &SyntaxError{
		Pos:      p.tk.Pos(),
		Expected: expected,
		Found:    found,
		Err:      err,
	}
}

func (p *parser) unexpected(tok *token.Token, expected string) error {
	return &SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Found:    tok.Describe(),
	}
}
