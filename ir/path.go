package ir

import (
	"strings"

	"github.com/signadot/treestore/debug"
)

// PathSep separates the segments of a lookup path.  There is no escaping:
// a node or attribute whose name contains PathSep cannot be addressed.
const PathSep = '/'

// Path is a parsed lookup path.  All segments but the last name children,
// the last names an attribute (or, for LookupNode, a child).
type Path []string

// ParsePath splits p on PathSep.  Empty segments are dropped, so leading,
// trailing and repeated separators are harmless.
func ParsePath(p string) Path {
	parts := strings.Split(p, string(PathSep))
	res := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		res = append(res, part)
	}
	return res
}

func (p Path) String() string {
	return string(PathSep) + strings.Join(p, string(PathSep))
}

// Dir returns all but the last segment.
func (p Path) Dir() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Base returns the last segment, or "" for an empty path.
func (p Path) Base() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Descend follows p from y through children only.
func (p Path) Descend(y *Node) *Node {
	res := y
	for _, seg := range p {
		if res == nil {
			return nil
		}
		res = res.Child(seg)
	}
	return res
}

// Resolve returns the attribute p names below y, or nil.
func (p Path) Resolve(y *Node) *Attr {
	if y == nil || len(p) == 0 {
		return nil
	}
	parent := p.Dir().Descend(y)
	if parent == nil {
		if debug.Lookup() {
			debug.Logf("lookup %s: no node at %s\n", p, p.Dir())
		}
		return nil
	}
	attr := parent.Attr(p.Base())
	if attr == nil && debug.Lookup() {
		debug.Logf("lookup %s: no attribute %q in %s\n", p, p.Base(), parent.Path())
	}
	return attr
}

// LookupNode returns the node reached from root by following every segment
// of path as a child name.  An empty path yields root.
func LookupNode(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	return ParsePath(path).Descend(root)
}

// Lookup returns the attribute named by path below root, or nil.
func Lookup(root *Node, path string) *Attr {
	return ParsePath(path).Resolve(root)
}

func LookupString(root *Node, path, def string) string {
	return StringOf(Lookup(root, path), def)
}

func LookupNum(root *Node, path string, def float64) float64 {
	return NumOf(Lookup(root, path), def)
}

func LookupInt(root *Node, path string, def int) int {
	return IntOf(Lookup(root, path), def)
}

func LookupVec(root *Node, path string, def []float64) []float64 {
	return VecOf(Lookup(root, path), def)
}

func LookupArray(root *Node, path string, def Array) Array {
	return ArrayOf(Lookup(root, path), def)
}
