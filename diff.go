package treestore

import (
	"bytes"

	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/libdiff"
)

// Diff compares the canonical text forms of two trees line by line.
func Diff(from, to *ir.Node) ([]libdiff.Line, error) {
	fromBuf, toBuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, fromBuf); err != nil {
		return nil, err
	}
	if err := encode.Encode(to, toBuf); err != nil {
		return nil, err
	}
	return libdiff.DiffLines(fromBuf.String(), toBuf.String()), nil
}
