package main

import (
	"fmt"
	"io"

	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	return getPath(cfg.MainConfig, cc.Out, cc.In, args[0], args[1:])
}

// getPath writes the attribute value at path, or else the node at path,
// for every document.
func getPath(cfg *MainConfig, w io.Writer, in io.Reader, path string, files []string) error {
	opts := cfg.encOpts(w)
	return eachDoc(cfg, in, files, func(file string, root *ir.Node) error {
		if attr := ir.Lookup(root, path); attr != nil {
			return encode.EncodeValue(attr.Value, w, opts...)
		}
		if node := ir.LookupNode(root, path); node != nil {
			return encode.Encode(node, w, opts...)
		}
		return fmt.Errorf("%s: %s: %w", file, ir.ParsePath(path), ir.ErrNotFound)
	})
}
