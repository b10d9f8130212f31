package main

import (
	"fmt"
	"io"

	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewDocs(cfg, cc.Out, cc.In, args)
}

func viewDocs(cfg *ViewConfig, w io.Writer, in io.Reader, files []string) error {
	opts := cfg.encOpts(w)
	sep := cfg.docSep()
	n := 0
	return eachDoc(cfg.MainConfig, in, files, func(file string, node *ir.Node) error {
		if n > 0 && sep != "" {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		n++
		if err := encode.Encode(node, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s from %s: %w", node.Name, file, err)
		}
		return nil
	})
}
