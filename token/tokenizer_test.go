package token

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in:    `root { size = 5 }`,
			types: []TokenType{TIdent, TSymbol, TIdent, TSymbol, TNumber, TSymbol},
			texts: []string{"root", "{", "size", "=", "5", "}"},
		},
		{
			in:    "# header\nx = \"hi there\" # trailing\n",
			types: []TokenType{TIdent, TSymbol, TString},
			texts: []string{"x", "=", "hi there"},
		},
		{
			in:    `pos = [1, -2.5, +3e2, .5, 1E-3]`,
			types: []TokenType{TIdent, TSymbol, TSymbol, TNumber, TSymbol, TNumber, TSymbol, TNumber, TSymbol, TNumber, TSymbol, TNumber, TSymbol},
			texts: []string{"pos", "=", "[", "1", ",", "-2.5", ",", "+3e2", ",", ".5", ",", "1E-3", "]"},
		},
		{
			in:    `a_1 b2c _x`,
			types: []TokenType{TIdent, TIdent, TSymbol, TIdent},
			texts: []string{"a_1", "b2c", "_", "x"},
		},
		{
			in:    `- x 5e y`,
			types: []TokenType{TSymbol, TIdent, TNumber, TIdent, TIdent},
			texts: []string{"-", "x", "5", "e", "y"},
		},
		{
			in:    `héllo = "ünïcode"`,
			types: []TokenType{TIdent, TSymbol, TString},
			texts: []string{"héllo", "=", "ünïcode"},
		},
		{
			in:    `s = "a # not a comment"`,
			types: []TokenType{TIdent, TSymbol, TString},
			texts: []string{"s", "=", "a # not a comment"},
		},
		{
			in:    `e = ""`,
			types: []TokenType{TIdent, TSymbol, TString},
			texts: []string{"e", "=", ""},
		},
		{
			in: "# only a comment",
		},
		{
			in: "",
		},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens want %d", tt.in, len(toks), len(tt.types))
			PrintTokens(toks, tt.in)
			continue
		}
		for i := range toks {
			tok := &toks[i]
			if tok.Type != tt.types[i] || tok.String() != tt.texts[i] {
				t.Errorf("%q token %d: got %s %q want %s %q", tt.in, i, tok.Type, tok.String(), tt.types[i], tt.texts[i])
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	type errTest struct {
		in  string
		err error
	}
	tests := []errTest{
		{in: `x = "abc`, err: ErrUnterminated},
		{in: "x = \"abc\ndef\"", err: ErrUnterminated},
		{in: "x = \"abc\r\n", err: ErrUnterminated},
		{in: "x = \xff", err: ErrBadUTF8},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
		}
		var tErr *TokenizeErr
		if !errors.As(err, &tErr) {
			t.Errorf("%q: expected *TokenizeErr, got %T", tt.in, err)
		}
	}
}

func TestPositions(t *testing.T) {
	in := "a {\n  b = 1\n  # c\n  \"s\"\n}"
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	type lc struct{ line, col int }
	want := []lc{{1, 1}, {1, 3}, {2, 3}, {2, 5}, {2, 7}, {4, 3}, {5, 1}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens", len(toks))
	}
	for i, w := range want {
		p := toks[i].Pos
		if p.Line != w.line || p.Col != w.col {
			t.Errorf("token %d %q: got %s want line %d, col %d", i, toks[i].Bytes, p, w.line, w.col)
		}
	}
	if toks[2].Pos.Offset != 6 {
		t.Errorf("offset: got %d", toks[2].Pos.Offset)
	}
}

func TestEOFIsDistinct(t *testing.T) {
	tk := NewTokenizer(strings.NewReader("  a  # c"))
	tok, err := tk.Next()
	if err != nil || tok.String() != "a" {
		t.Fatalf("got %v, %v", tok, err)
	}
	for range 2 {
		if _, err := tk.Next(); err != io.EOF {
			t.Errorf("expected io.EOF, got %v", err)
		}
	}
}

func TestMaxSize(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`abcdefgh "0123456789" 12345`), TokenMaxSize(4))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abcd", "0123", "1234"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens", len(toks))
	}
	for i, w := range want {
		if toks[i].String() != w {
			t.Errorf("token %d: got %q want %q", i, toks[i].String(), w)
		}
	}
}

// The tokenizer must not consume input beyond what the requested tokens
// need, so that several documents can share one reader.
func TestLazy(t *testing.T) {
	r := &countingReader{r: strings.NewReader("a b c")}
	tk := NewTokenizer(r)
	if _, err := tk.Next(); err != nil {
		t.Fatal(err)
	}
	if r.reads != 1 {
		t.Errorf("got %d reads", r.reads)
	}
}

type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func TestIsIdent(t *testing.T) {
	for _, s := range []string{"a", "abc_1", "héllo", "X9"} {
		if !IsIdent(s) {
			t.Errorf("%q should be an identifier", s)
		}
	}
	for _, s := range []string{"", "1a", "_a", "a-b", "a b", "a/b", "\xff"} {
		if IsIdent(s) {
			t.Errorf("%q should not be an identifier", s)
		}
	}
}

func TestDescribe(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`x } "s" 5`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"identifier x", "symbol '}'", `string "s"`, "number 5"}
	for i, w := range want {
		if got := toks[i].Describe(); got != w {
			t.Errorf("got %q want %q", got, w)
		}
	}
	if !toks[1].IsSymbol('}') || toks[0].IsSymbol('x') {
		t.Error("IsSymbol")
	}
}
