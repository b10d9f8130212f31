package main

import (
	"fmt"
	"io"

	"github.com/signadot/treestore"
	"github.com/signadot/treestore/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := diffFiles(cfg.MainConfig, cc.Out, cc.In, args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffFiles(cfg *MainConfig, w io.Writer, in io.Reader, a, b string) (bool, error) {
	y1, err := getObjFile(cfg, in, a)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", a, err)
	}
	y2, err := getObjFile(cfg, in, b)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", b, err)
	}
	lines, err := treestore.Diff(y1, y2)
	if err != nil {
		return false, err
	}
	if !libdiff.Changed(lines) {
		return false, nil
	}
	if err := libdiff.Write(w, lines, cfg.colored(w)); err != nil {
		return false, err
	}
	return true, nil
}
