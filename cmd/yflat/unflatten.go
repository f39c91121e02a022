package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	yamlflat "github.com/infinilabs/yaml-flat"
	"github.com/infinilabs/yaml-flat/encode"
	"github.com/infinilabs/yaml-flat/ir"
	"github.com/infinilabs/yaml-flat/parse"
)

func unflatten(cfg *UnflattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unflatten.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return unflattenReader(cfg, cc.Out, cc.In)
	}
	return eachFile(args, func(file string, r io.Reader) error {
		return unflattenReader(cfg, cc.Out, r)
	})
}

func unflattenReader(cfg *UnflattenConfig, w io.Writer, r io.Reader) error {
	return eachDoc(r, w, func(doc []byte) error {
		node, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		pairs, err := flatEntries(node)
		if err != nil {
			return err
		}
		nested, err := yamlflat.Unflatten(pairs)
		if err != nil {
			return err
		}
		return encode.Encode(nested, w, cfg.encOpts()...)
	})
}

// flatEntries reads a parsed flat-mapping document into the pairs
// Unflatten consumes. Bool and number keys are taken in their
// canonical string form, same as the flattener renders them.
func flatEntries(node *ir.Node) ([]yamlflat.Entry, error) {
	if node.Type == ir.NullType {
		return nil, nil
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("flat document must be a mapping, got %s", node.Type)
	}
	pairs := make([]yamlflat.Entry, len(node.Fields))
	for i := range node.Fields {
		pairs[i] = yamlflat.Entry{
			Path:  node.Fields[i].KeyString(),
			Value: node.Values[i],
		}
	}
	return pairs, nil
}
