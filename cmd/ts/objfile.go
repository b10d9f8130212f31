package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/treestore"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/parse"
)

// getObjFile reads the single document in the file at path, "-" being in.
func getObjFile(cfg *MainConfig, in io.Reader, path string) (*ir.Node, error) {
	opt := treestore.WithParseOptions(cfg.parseOpts(path)...)
	if path == "-" {
		return treestore.Load(in, opt)
	}
	return treestore.LoadFile(path, opt)
}

// eachDoc calls f on every document of the named files in turn, or of in
// when there are none.
func eachDoc(cfg *MainConfig, in io.Reader, files []string, f func(file string, node *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := eachDocIn(cfg, in, file, f); err != nil {
			return err
		}
	}
	return nil
}

func eachDocIn(cfg *MainConfig, in io.Reader, file string, f func(string, *ir.Node) error) error {
	r := in
	if file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer fh.Close()
		r = fh
	}
	dec := parse.NewDecoder(r, cfg.parseOpts(file)...)
	for i := 0; ; i++ {
		node, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error decoding document %d of %s: %w", i, file, err)
		}
		if err := f(file, node); err != nil {
			return err
		}
	}
}
