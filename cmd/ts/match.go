package main

import (
	"fmt"
	"io"

	"github.com/signadot/treestore"
	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, an expression", cli.ErrUsage)
	}
	if cfg.Print && cfg.Count {
		return fmt.Errorf("%w: only one of -p, -c may be specified", cli.ErrUsage)
	}
	return matchDocs(cfg, cc.Out, cc.In, args[0], args[1:])
}

func matchDocs(cfg *MatchConfig, w io.Writer, in io.Reader, code string, files []string) error {
	m, err := treestore.NewMatcher(code)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(w)
	count := 0
	err = eachDoc(cfg.MainConfig, in, files, func(file string, root *ir.Node) error {
		nodes, err := m.All(root)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		count += len(nodes)
		if cfg.Count {
			return nil
		}
		for _, node := range nodes {
			if cfg.Print {
				if err := encode.Encode(node, w, opts...); err != nil {
					return fmt.Errorf("error encoding output: %w", err)
				}
				continue
			}
			prefix := ""
			if len(files) > 1 {
				prefix = file + ":"
			}
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, node.Path()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		_, err = fmt.Fprintln(w, count)
	}
	return err
}
