// Package encode writes ir trees in the treestore text format, or as yaml
// or json.
//
// # Usage
//
//	root := ir.NewNode("root")
//	root.SetAttr("size", ir.FromInt(5))
//	err := encode.Encode(root, os.Stdout)
//
//	// with colors, as json
//	err = encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//	err = encode.Encode(root, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/treestore/ir - the tree
//   - github.com/signadot/treestore/parse - reading documents back
package encode
