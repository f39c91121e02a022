package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/infinilabs/yaml-flat/flatdiff"
	"github.com/infinilabs/yaml-flat/ir"
	"github.com/infinilabs/yaml-flat/parse"
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
	a, err := parseDocFile(args[0], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := parseDocFile(args[1], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := flatdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	r := flatdiff.NewRenderer(cc.Out, cfg.Color || isTerminal(cc.Out))
	if err := r.Render(changes); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func parseDocFile(file string, opts []parse.ParseOption) (*ir.Node, error) {
	var node *ir.Node
	err := oneFile(file, func(_ string, r io.Reader) error {
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		node, err = parse.Parse(d, opts...)
		return err
	})
	return node, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
