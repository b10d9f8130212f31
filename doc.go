// Package treestore loads, saves and queries hierarchical configuration
// trees.
//
// A tree is made of named nodes (package ir) holding ordered attributes
// and child nodes.  Its canonical text form looks like
//
//	root {
//		size = 5
//		pos = [1, 2, 3]
//		child {
//			name = "hi"
//		}
//	}
//
// Load and Save read and write trees in any supported format.  Lookups by
// slash separated path live in package ir, Match selects nodes with an
// expression and Diff compares two trees.
//
// # Related Packages
//
//   - github.com/signadot/treestore/ir - nodes, attributes, values and paths
//   - github.com/signadot/treestore/parse - parsing
//   - github.com/signadot/treestore/encode - encoding
package treestore
