// Package ir provides the in-memory tree for treestore documents.
//
// # Overview
//
// A document is a tree of Nodes.  Every Node has a name, an ordered list of
// attributes and an ordered list of children.  Attribute names need not be
// unique; lookups return the first match.
//
// # Values
//
// An attribute holds a Value, which is one of
//
//   - String: text
//   - Number: a number, with both its float and truncated integer form
//   - Vector: an array of numbers only
//   - Array: an array of arbitrary values, possibly nested
//
// Use the constructors to build values:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	v, _ := ir.FromFloats(1, 2, 3)              // Vector
//	a, _ := ir.FromValues(s, n)                 // Array
//
// A Vector can also be read element by element through Vector.Array.
//
// Values are immutable by convention.  Clone makes a deep copy when a value
// is to be shared between trees that will be changed independently.
//
// # Ownership
//
// A Node owns its attributes and children.  Parent is a back reference
// kept up to date by AddChild and RemoveChild; it is never used to release
// anything.  Node.Clone, Node.Destroy and Node.Visit use an explicit stack so
// that deep trees do not exhaust the goroutine stack.
//
// # Lookup
//
// Attributes can be found by slash separated path from a root:
//
//	size := ir.LookupInt(root, "mesh/size", 1)
//
// All lookups resolve absent or mistyped attributes to the caller's default.
package ir
