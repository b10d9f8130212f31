// Package gomap maps between trees and Go values.
//
// A node corresponds to a struct or map: attributes and children become
// fields, matched by their yaml tag or else by the lower cased field name.
// Slices of numbers or strings become array attributes.  Values have no
// boolean type, so bool fields are written as the strings "true" and
// "false" and cannot be read back.
package gomap

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/parse"
)

// FromNode decodes the attributes and children of node into p, which must
// be a non-nil pointer.
func FromNode(node *ir.Node, p any) error {
	ms, err := encode.ToMapSlice(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(ms[0].Value)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", node.Path(), err)
	}
	if err := yaml.Unmarshal(d, p); err != nil {
		return fmt.Errorf("error decoding %s into %T: %w", node.Path(), p, err)
	}
	return nil
}

// ToNode builds a tree named name from v, a struct or map or a pointer to
// one.
func ToNode(name string, v any) (*ir.Node, error) {
	d, err := yaml.Marshal(yaml.MapSlice{{Key: name, Value: v}})
	if err != nil {
		return nil, fmt.Errorf("error encoding %T: %w", v, err)
	}
	return parse.Parse(d, parse.ParseYAML())
}

// Load parses the document d and decodes it into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromNode(node, p)
}
