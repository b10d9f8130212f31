// Package libdiff computes line diffs between serialized trees.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return InsertPrefix
	case Delete:
		return DeletePrefix
	default:
		return EqualPrefix
	}
}

type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

// DiffLines compares from and to line by line.  Each resulting Line holds
// one line of either input without its trailing newline.
func DiffLines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// splitLines splits a chunk into its lines.  Only the chunk's final line
// break is dropped, so "\n" is one empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes lines with their prefixes, inserted lines in green and
// deleted lines in red when colored is set.
func Write(w io.Writer, lines []Line, colored bool) error {
	for _, ln := range lines {
		s := ln.String()
		if colored {
			switch ln.Op {
			case Insert:
				s = color.GreenString("%s", s)
			case Delete:
				s = color.RedString("%s", s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
