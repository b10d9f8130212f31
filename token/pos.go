package token

import "fmt"

// Pos is a position in the input.  Offset counts bytes from 0, Line and Col
// count from 1.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}
