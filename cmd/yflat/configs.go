package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/infinilabs/yaml-flat/encode"
	"github.com/infinilabs/yaml-flat/format"
	"github.com/infinilabs/yaml-flat/parse"
)

type MainConfig struct {
	Y bool `cli:"name=y aliases=yaml desc='do output in yaml'"`
	J bool `cli:"name=j aliases=json desc='do output in json'"`

	InFormat  *format.Format
	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.InFormat == nil {
		return nil
	}
	return []parse.ParseOption{
		parse.ParseFormat(*cfg.InFormat),
	}
}

type FlattenConfig struct {
	*MainConfig

	Flatten *cli.Command
}

type UnflattenConfig struct {
	*MainConfig

	Unflatten *cli.Command
}

type DiffConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	*MainConfig

	Diff *cli.Command
}
