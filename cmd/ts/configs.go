package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/treestore/debug"
	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	MaxDepth int  `cli:"name=maxdepth desc='maximum nesting depth of input documents'"`

	Debug string `cli:"name=debug desc='comma separated debug flags: tokens,parse,lookup,match,encode'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// setDebug turns on the debug flags named by -debug.
func (cfg *MainConfig) setDebug() error {
	if cfg.Debug == "" {
		return nil
	}
	for _, name := range strings.Split(cfg.Debug, ",") {
		if err := debug.Set(strings.TrimSpace(name), true); err != nil {
			return fmt.Errorf("%w: -debug: %w (known: %s)", cli.ErrUsage, err, strings.Join(debug.Names(), ","))
		}
	}
	return nil
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format for reading the file at path, "-" being
// standard input.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.TextFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := format.FromPath(cfg.Out); ok {
		return f
	}
	return format.TextFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(path)),
	}
	if cfg.MaxDepth != 0 {
		res = append(res, parse.ParseMaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w should be colored: always with
// -color, never with -color=false, and otherwise only on terminals.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	for _, opt := range cfg.mainOpts() {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) mainOpts() []*cli.Opt {
	if cfg.Main == nil {
		return nil
	}
	return cfg.Main.Opts
}

// docSep returns what goes between two documents written in the output
// format.
func (cfg *MainConfig) docSep() string {
	switch cfg.outFormat() {
	case format.YAMLFormat:
		return "---\n"
	default:
		return ""
	}
}

type ViewConfig struct {
	*MainConfig

	Spaces int `cli:"name=s desc='indent with this many spaces instead of a tab'"`
	View   *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.Spaces > 0 {
		res = append(res, encode.EncodeIndent(strings.Repeat(" ", cfg.Spaces)))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Print bool `cli:"name=p desc='print the matching nodes rather than their paths'"`
	Count bool `cli:"name=c desc='print the number of matches only'"`
}

type ConvertConfig struct {
	*MainConfig

	Write   bool `cli:"name=w desc='write each file beside itself, named by the output format'"`
	Convert *cli.Command
}
