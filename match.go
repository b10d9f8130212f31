package treestore

import (
	"fmt"

	"github.com/signadot/treestore/debug"
	"github.com/signadot/treestore/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// MatchEnv is what a match expression sees for each node.  Attrs holds the
// first attribute of each name, as plain Go values.
type MatchEnv struct {
	Name     string         `expr:"name"`
	Attrs    map[string]any `expr:"attrs"`
	Depth    int            `expr:"depth"`
	Children int            `expr:"children"`
}

func newMatchEnv(node *ir.Node, depth int) MatchEnv {
	attrs := make(map[string]any, len(node.Attrs))
	for _, attr := range node.Attrs {
		if _, ok := attrs[attr.Name]; ok {
			continue
		}
		attrs[attr.Name] = ir.ToAny(attr.Value)
	}
	return MatchEnv{
		Name:     node.Name,
		Attrs:    attrs,
		Depth:    depth,
		Children: len(node.Children),
	}
}

// Matcher is a compiled match expression.
type Matcher struct {
	src string
	prg *vm.Program
	cur *ir.Node
}

// NewMatcher compiles code.  Besides the fields of MatchEnv, code may call
// lookup(path), which resolves path from the current node and returns nil
// if nothing is there, and path(), which returns the current node's path.
func NewMatcher(code string) (*Matcher, error) {
	m := &Matcher{src: code}
	opts := append(m.exprOpts(), expr.Env(MatchEnv{}))
	prg, err := expr.Compile(code, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", code, err)
	}
	m.prg = prg
	return m, nil
}

func (m *Matcher) exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("lookup", func(params ...any) (any, error) {
			attr := ir.Lookup(m.cur, params[0].(string))
			if attr == nil {
				return nil, nil
			}
			return ir.ToAny(attr.Value), nil
		},
			new(func(string) any)),
		expr.Function("path", func(params ...any) (any, error) {
			return m.cur.Path(), nil
		},
			new(func() string)),
	}
}

// Match reports whether the expression holds at node.  Results which are
// not booleans are converted to values and tested with ir.Truth.
func (m *Matcher) Match(node *ir.Node) (bool, error) {
	return m.match(node, node.Depth())
}

func (m *Matcher) match(node *ir.Node, depth int) (bool, error) {
	m.cur = node
	defer func() { m.cur = nil }()
	res, err := expr.Run(m.prg, newMatchEnv(node, depth))
	if err != nil {
		return false, fmt.Errorf("%s: %w", node.Path(), err)
	}
	var ok bool
	switch x := res.(type) {
	case bool:
		ok = x
	case nil:
	default:
		v, err := ir.FromAny(x)
		if err != nil {
			return false, fmt.Errorf("%s: result of %q: %w", node.Path(), m.src, err)
		}
		ok = ir.Truth(v)
	}
	if debug.Match() {
		debug.Logf("match %q at %s: %v\n", m.src, node.Path(), ok)
	}
	return ok, nil
}

// Match returns the nodes of the tree under root, root included, for
// which code holds, in depth first order.
func Match(root *ir.Node, code string) ([]*ir.Node, error) {
	m, err := NewMatcher(code)
	if err != nil {
		return nil, err
	}
	return m.All(root)
}

// All returns the matching nodes of the tree under root in depth first
// order.
func (m *Matcher) All(root *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	depth := root.Depth()
	err := root.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return false, nil
		}
		ok, err := m.match(node, depth)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, node)
		}
		depth++
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
