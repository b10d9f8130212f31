package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/treestore/token"
)

var (
	ErrSyntax     = errors.New("syntax error")
	ErrEmptyArray = fmt.Errorf("%w: empty array", ErrSyntax)
	ErrTooDeep    = errors.New("nesting too deep")
	ErrRoot       = errors.New("document must have a single root node")
)

// SyntaxError reports what the parser expected and what it found instead.
// It matches ErrSyntax with errors.Is, as well as Err when set.
type SyntaxError struct {
	Pos      token.Pos
	Expected string
	Found    string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s: expected %s, found %s", ErrSyntax, e.Pos, e.Expected, e.Found)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}
	return []error{ErrSyntax, e.Err}
}
