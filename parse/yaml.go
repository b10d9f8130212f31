package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/treestore/ir"
)

func fromYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return fromDoc(doc, opts)
}

// fromDoc converts a decoded yaml document into a tree.  The document must
// be a mapping with exactly one key, naming the root.  Nested mappings
// become children, everything else becomes an attribute.
func fromDoc(doc any, opts *parseOpts) (*ir.Node, error) {
	ms, ok := doc.(yaml.MapSlice)
	if !ok || len(ms) != 1 {
		return nil, fmt.Errorf("%w: expected a mapping with one key, got %T", ErrRoot, doc)
	}
	item := ms[0]
	body, ok := item.Value.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: root %v is not a mapping", ErrRoot, item.Key)
	}
	return fromMapSlice(keyName(item.Key), body, 1, opts)
}

func fromMapSlice(name string, ms yaml.MapSlice, depth int, opts *parseOpts) (*ir.Node, error) {
	if opts.maxDepth > 0 && depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, opts.maxDepth)
	}
	node := ir.NewNode(name)
	for _, item := range ms {
		key := keyName(item.Key)
		if sub, ok := item.Value.(yaml.MapSlice); ok {
			child, err := fromMapSlice(key, sub, depth+1, opts)
			if err != nil {
				return nil, err
			}
			if err := node.AddChild(child); err != nil {
				return nil, err
			}
			continue
		}
		v, err := ir.FromAny(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q of %q: %w", ErrSyntax, key, name, err)
		}
		node.AddAttr(ir.NewAttr(key, v))
	}
	return node, nil
}

func keyName(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
