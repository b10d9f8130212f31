// Package token provides tokenization of treestore text.
//
// [Tokenizer] reads tokens lazily from an io.Reader; [Tokenize] is a
// convenience for tokenizing bytes.
//
// There are four kinds of token: identifiers, numbers, double quoted
// strings and single character symbols.  Whitespace is skipped and a '#'
// starts a comment which runs to the end of the line.
package token
