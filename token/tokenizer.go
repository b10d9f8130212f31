package token

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/treestore/debug"
)

// Tokenizer reads tokens from an io.Reader on demand.  It never reads
// further ahead than its buffer requires.
type Tokenizer struct {
	r   *bufio.Reader
	opt *tokenOpts

	pos, prev Pos
	buf       []byte
}

// NewTokenizer creates a Tokenizer reading from r.  If r is already a
// *bufio.Reader it is used directly.
func NewTokenizer(r io.Reader, opts ...TokenOpt) *Tokenizer {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tokenizer{
		r:   br,
		opt: opt,
		pos: Pos{Line: 1, Col: 1},
	}
}

// Pos returns the position of the next unread byte.
func (t *Tokenizer) Pos() Pos {
	return t.pos
}

// Next returns the next token.  At the end of input it returns io.EOF.
func (t *Tokenizer) Next() (*Token, error) {
	tok, err := t.next()
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		debug.Logf("token %s\n", tok.Info())
	}
	return tok, nil
}

func (t *Tokenizer) next() (*Token, error) {
	r, err := t.skipSpace()
	if err != nil {
		return nil, err
	}
	start := t.prev
	t.buf = t.buf[:0]
	switch {
	case isDigit(r):
		t.add(r)
		return t.number(start)
	case r == '-' || r == '+' || r == '.':
		if t.startsNumber(r) {
			t.add(r)
			return t.number(start)
		}
		return t.token(TSymbol, start, r), nil
	case unicode.IsLetter(r):
		t.add(r)
		return t.ident(start)
	case r == '"':
		return t.quoted(start)
	default:
		return t.token(TSymbol, start, r), nil
	}
}

func (t *Tokenizer) token(tt TokenType, p Pos, r rune) *Token {
	return &Token{Type: tt, Pos: p, Bytes: utf8.AppendRune(nil, r)}
}

func (t *Tokenizer) emit(tt TokenType, p Pos) *Token {
	return &Token{Type: tt, Pos: p, Bytes: bytes.Clone(t.buf)}
}

// add appends r to the current token, dropping it once the token is
// at its size limit.
func (t *Tokenizer) add(r rune) {
	if t.opt.maxSize > 0 && len(t.buf)+utf8.RuneLen(r) > t.opt.maxSize {
		return
	}
	t.buf = utf8.AppendRune(t.buf, r)
}

func (t *Tokenizer) addByte(c byte) {
	if t.opt.maxSize > 0 && len(t.buf) >= t.opt.maxSize {
		return
	}
	t.buf = append(t.buf, c)
}

func (t *Tokenizer) skipSpace() (rune, error) {
	for {
		r, err := t.readRune()
		if err != nil {
			return 0, err
		}
		if r == '#' {
			if err := t.skipLine(); err != nil {
				return 0, err
			}
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}
		return r, nil
	}
}

func (t *Tokenizer) skipLine() error {
	for {
		c, err := t.readByte()
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

func (t *Tokenizer) ident(start Pos) (*Token, error) {
	for {
		r, err := t.readRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isIdentRune(r) {
			t.unreadRune()
			break
		}
		t.add(r)
	}
	return t.emit(TIdent, start), nil
}

func (t *Tokenizer) number(start Pos) (*Token, error) {
	if err := t.digits(); err != nil {
		return nil, err
	}
	if c, ok := t.peek(0); ok && c == '.' && bytes.IndexByte(t.buf, '.') == -1 {
		t.readByte()
		t.addByte('.')
		if err := t.digits(); err != nil {
			return nil, err
		}
	}
	if c, ok := t.peek(0); ok && (c == 'e' || c == 'E') {
		n, ok := t.peek(1)
		if ok && (n == '+' || n == '-') {
			n, ok = t.peek(2)
		}
		if ok && isDigit(rune(n)) {
			t.readByte()
			t.addByte(c)
			if s, _ := t.peek(0); s == '+' || s == '-' {
				t.readByte()
				t.addByte(s)
			}
			if err := t.digits(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := strconv.ParseFloat(string(t.buf), 64); err != nil {
		return nil, NewTokenizeErr(ErrNumber, start)
	}
	return t.emit(TNumber, start), nil
}

func (t *Tokenizer) digits() error {
	for {
		c, ok := t.peek(0)
		if !ok || !isDigit(rune(c)) {
			return nil
		}
		if _, err := t.readByte(); err != nil {
			return err
		}
		t.addByte(c)
	}
}

func (t *Tokenizer) startsNumber(r rune) bool {
	c, ok := t.peek(0)
	if !ok {
		return false
	}
	if isDigit(rune(c)) {
		return true
	}
	if r != '.' && c == '.' {
		d, ok := t.peek(1)
		return ok && isDigit(rune(d))
	}
	return false
}

// quoted reads raw bytes up to the closing quote.  A line break or the
// end of input before it is an error.
func (t *Tokenizer) quoted(start Pos) (*Token, error) {
	for {
		c, err := t.readByte()
		if errors.Is(err, io.EOF) {
			return nil, NewTokenizeErr(ErrUnterminated, start)
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case '"':
			return t.emit(TString, start), nil
		case '\n', '\r':
			return nil, NewTokenizeErr(ErrUnterminated, start)
		}
		t.addByte(c)
	}
}

func (t *Tokenizer) peek(i int) (byte, bool) {
	d, err := t.r.Peek(i + 1)
	if err != nil || len(d) <= i {
		return 0, false
	}
	return d[i], true
}

func (t *Tokenizer) readRune() (rune, error) {
	r, sz, err := t.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == utf8.RuneError && sz == 1 {
		return 0, NewTokenizeErr(ErrBadUTF8, t.pos)
	}
	t.advance(r, sz)
	return r, nil
}

func (t *Tokenizer) unreadRune() {
	if err := t.r.UnreadRune(); err != nil {
		panic(err)
	}
	t.pos = t.prev
}

func (t *Tokenizer) readByte() (byte, error) {
	c, err := t.r.ReadByte()
	if err != nil {
		return 0, err
	}
	t.advance(rune(c), 1)
	return c, nil
}

func (t *Tokenizer) advance(r rune, sz int) {
	t.prev = t.pos
	t.pos.Offset += sz
	if r == '\n' {
		t.pos.Line++
		t.pos.Col = 1
		return
	}
	t.pos.Col++
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsIdent reports whether s reads back as a single identifier token.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

// Tokenize appends all tokens of d to dst.
func Tokenize(dst []Token, d []byte, opts ...TokenOpt) ([]Token, error) {
	t := NewTokenizer(bytes.NewReader(d), opts...)
	for {
		tok, err := t.Next()
		if errors.Is(err, io.EOF) {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
	}
}
