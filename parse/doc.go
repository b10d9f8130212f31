// Package parse reads treestore documents into ir trees.
//
// The text grammar is
//
//	document  := IDENT '{' node_body '}'
//	node_body := (IDENT ('=' value | '{' node_body '}'))*
//	value     := NUMBER | IDENT | STRING | array
//	array     := '[' value (',' value)* ']' | '{' value (',' value)* '}'
//
// Parse reads exactly one document from a byte slice.  A Decoder reads a
// sequence of documents from a stream.  With ParseFormat, documents can
// also be imported from yaml or json.
package parse
