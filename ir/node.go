package ir

import (
	"fmt"
	"strings"
)

// Attr is a named value attached to a node.
type Attr struct {
	Name  string
	Value Value
}

func NewAttr(name string, v Value) *Attr {
	return &Attr{Name: name, Value: v}
}

func (a *Attr) SetName(name string) {
	a.Name = name
}

// Clone returns a deep copy of a.
func (a *Attr) Clone() *Attr {
	return &Attr{Name: a.Name, Value: Clone(a.Value)}
}

// Node is a named element of the tree.  A node owns its attributes and
// its children.  Parent is a back reference maintained by AddChild and
// RemoveChild.
type Node struct {
	Name     string
	Attrs    []*Attr
	Children []*Node
	Parent   *Node
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

func (y *Node) SetName(name string) {
	y.Name = name
}

func (y *Node) AttrCount() int  { return len(y.Attrs) }
func (y *Node) ChildCount() int { return len(y.Children) }

// AddAttr appends attr to the attribute list.  The node takes ownership of
// attr.
func (y *Node) AddAttr(attr *Attr) {
	y.Attrs = append(y.Attrs, attr)
}

// SetAttr appends a new attribute holding v.
func (y *Node) SetAttr(name string, v Value) *Attr {
	attr := NewAttr(name, v)
	y.AddAttr(attr)
	return attr
}

// Attr returns the first attribute called name, or nil.
func (y *Node) Attr(name string) *Attr {
	for _, attr := range y.Attrs {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

// RemoveAttr unlinks attr from y by identity.
func (y *Node) RemoveAttr(attr *Attr) error {
	for i, a := range y.Attrs {
		if a != attr {
			continue
		}
		copy(y.Attrs[i:], y.Attrs[i+1:])
		y.Attrs[len(y.Attrs)-1] = nil
		y.Attrs = y.Attrs[:len(y.Attrs)-1]
		return nil
	}
	return fmt.Errorf("%w: %q is not an attribute of %q", ErrNotFound, attr.Name, y.Name)
}

// AddChild appends child to the children of y.  A child still attached to
// another parent is removed from it first.  Adding y or one of its
// ancestors below y fails with ErrCycle.
func (y *Node) AddChild(child *Node) error {
	// only a node with children can be a proper ancestor of y
	if child == y || len(child.Children) > 0 {
		for p := y; p != nil; p = p.Parent {
			if p == child {
				return fmt.Errorf("%w: %q below %q", ErrCycle, child.Name, y.Name)
			}
		}
	}
	if child.Parent != nil {
		if err := child.Parent.RemoveChild(child); err != nil {
			return err
		}
	}
	child.Parent = y
	y.Children = append(y.Children, child)
	return nil
}

// Child returns the first child called name, or nil.
func (y *Node) Child(name string) *Node {
	for _, c := range y.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// RemoveChild unlinks child from y.  The removed subtree is left intact
// and belongs to the caller.
func (y *Node) RemoveChild(child *Node) error {
	for i, c := range y.Children {
		if c != child {
			continue
		}
		copy(y.Children[i:], y.Children[i+1:])
		y.Children[len(y.Children)-1] = nil
		y.Children = y.Children[:len(y.Children)-1]
		child.Parent = nil
		return nil
	}
	return fmt.Errorf("%w: %q is not a child of %q", ErrNotFound, child.Name, y.Name)
}

// Depth is the number of ancestors of y.
func (y *Node) Depth() int {
	d := 0
	for p := y.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Path returns the slash separated path of child names leading from the
// root to y.  The root's path is "/".
func (y *Node) Path() string {
	var names []string
	for n := y; n.Parent != nil; n = n.Parent {
		names = append(names, n.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

func (y *Node) String() string {
	return fmt.Sprintf("%s{%d attrs, %d children}", y.Name, len(y.Attrs), len(y.Children))
}

func cloneAttrs(attrs []*Attr) []*Attr {
	if len(attrs) == 0 {
		return nil
	}
	res := make([]*Attr, len(attrs))
	for i, attr := range attrs {
		res[i] = attr.Clone()
	}
	return res
}

// Clone returns a deep copy of the subtree rooted at y.  The copy has no
// parent.
func (y *Node) Clone() *Node {
	type clonePair struct{ src, dst *Node }
	res := &Node{Name: y.Name, Attrs: cloneAttrs(y.Attrs)}
	stack := []clonePair{{src: y, dst: res}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.Children) == 0 {
			continue
		}
		p.dst.Children = make([]*Node, len(p.src.Children))
		for i, c := range p.src.Children {
			dc := &Node{Name: c.Name, Attrs: cloneAttrs(c.Attrs), Parent: p.dst}
			p.dst.Children[i] = dc
			stack = append(stack, clonePair{src: c, dst: dc})
		}
	}
	return res
}

// Destroy tears down the subtree rooted at y: every attribute and child is
// released and every parent link broken.  If y has a parent it is removed
// from it first.
func (y *Node) Destroy() {
	if y.Parent != nil {
		y.Parent.RemoveChild(y)
	}
	stack := []*Node{y}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, n.Children...)
		for i := range n.Attrs {
			n.Attrs[i] = nil
		}
		for i := range n.Children {
			n.Children[i] = nil
		}
		n.Attrs = nil
		n.Children = nil
		n.Parent = nil
	}
}

// Visit calls f on every node of the subtree in depth first order, once
// before its children (isPost false) and once after (isPost true).  The
// children are only visited if the pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	type frame struct {
		node *Node
		post bool
	}
	stack := []frame{{node: y}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.post {
			if _, err := f(top.node, true); err != nil {
				return err
			}
			continue
		}
		dive, err := f(top.node, false)
		if err != nil {
			return err
		}
		stack = append(stack, frame{node: top.node, post: true})
		if !dive {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: top.node.Children[i]})
		}
	}
	return nil
}

// EqualNodes reports whether the subtrees at a and b have the same names,
// attributes and children, in the same order.  Parents are not compared.
func EqualNodes(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	type pair struct{ a, b *Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a.Name != p.b.Name {
			return false
		}
		if len(p.a.Attrs) != len(p.b.Attrs) || len(p.a.Children) != len(p.b.Children) {
			return false
		}
		for i, attr := range p.a.Attrs {
			other := p.b.Attrs[i]
			if attr.Name != other.Name || !Equal(attr.Value, other.Value) {
				return false
			}
		}
		for i := range p.a.Children {
			stack = append(stack, pair{p.a.Children[i], p.b.Children[i]})
		}
	}
	return true
}
