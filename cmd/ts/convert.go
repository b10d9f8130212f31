package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write {
		if cfg.OutFormat == nil || cfg.Out != "" {
			return fmt.Errorf("%w: convert -w requires -O and no -o", cli.ErrUsage)
		}
		if len(args) == 0 {
			return fmt.Errorf("%w: convert -w requires file arguments", cli.ErrUsage)
		}
		written, err := convertFiles(cfg.MainConfig, args)
		for _, path := range written {
			fmt.Fprintln(cc.Out, path)
		}
		return err
	}
	if cfg.OutFormat == nil && cfg.Out == "" {
		return fmt.Errorf("%w: convert requires an output format, from -O or the -o file name", cli.ErrUsage)
	}
	return viewDocs(&ViewConfig{MainConfig: cfg.MainConfig}, cc.Out, cc.In, args)
}

// convertFiles writes every file beside itself, its extension replaced by
// the suffix of the output format, and returns the paths written so far.
func convertFiles(cfg *MainConfig, files []string) ([]string, error) {
	plain := *cfg
	plain.Color = false
	plain.Main = nil
	suffix := cfg.outFormat().Suffix()
	var written []string
	for _, file := range files {
		if file == "-" {
			return written, fmt.Errorf("%w: cannot name the output for standard input", cli.ErrUsage)
		}
		out := strings.TrimSuffix(file, filepath.Ext(file)) + suffix
		if out == file {
			return written, fmt.Errorf("%w: %s is already in %s form", cli.ErrUsage, file, cfg.outFormat())
		}
		buf := bytes.NewBuffer(nil)
		if err := viewDocs(&ViewConfig{MainConfig: &plain}, buf, nil, []string{file}); err != nil {
			return written, err
		}
		if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}
