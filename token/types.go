package token

import (
	"fmt"
)

type TokenType int

const (
	TIdent TokenType = iota
	TNumber
	TString
	TSymbol
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TIdent:  "TIdent",
		TNumber: "TNumber",
		TString: "TString",
		TSymbol: "TSymbol",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Describe returns a human readable name for the token type, as used in
// diagnostics.
func (t TokenType) Describe() string {
	switch t {
	case TIdent:
		return "identifier"
	case TNumber:
		return "number"
	case TString:
		return "string"
	case TSymbol:
		return "symbol"
	}
	return "unknown"
}

// Token is a single token.  For TString, Bytes holds the text between the
// quotes.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s `%s` at %s", t.Type, t.Bytes, t.Pos)
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Describe renders the token for diagnostics, e.g. `symbol '}'`.
func (t *Token) Describe() string {
	switch t.Type {
	case TString:
		return fmt.Sprintf("string %q", t.Bytes)
	case TSymbol:
		return fmt.Sprintf("symbol '%s'", t.Bytes)
	default:
		return fmt.Sprintf("%s %s", t.Type.Describe(), t.Bytes)
	}
}

// IsSymbol reports whether t is the symbol c.
func (t *Token) IsSymbol(c rune) bool {
	if t.Type != TSymbol {
		return false
	}
	return string(t.Bytes) == string(c)
}
