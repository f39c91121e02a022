package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	yamlflat "github.com/infinilabs/yaml-flat"
	"github.com/infinilabs/yaml-flat/encode"
	"github.com/infinilabs/yaml-flat/parse"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return flattenReader(cfg, cc.Out, cc.In)
	}
	return eachFile(args, func(file string, r io.Reader) error {
		return flattenReader(cfg, cc.Out, r)
	})
}

func flattenReader(cfg *FlattenConfig, w io.Writer, r io.Reader) error {
	return eachDoc(r, w, func(doc []byte) error {
		node, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		flat := yamlflat.Flatten(node)
		return encode.Encode(flat.Node(), w, cfg.encOpts()...)
	})
}

// eachFile opens each named file ("-" means stdin) and hands it to f.
func eachFile(files []string, f func(file string, r io.Reader) error) error {
	for _, file := range files {
		if err := oneFile(file, f); err != nil {
			return err
		}
	}
	return nil
}

func oneFile(file string, f func(file string, r io.Reader) error) error {
	var r *os.File
	if file != "-" {
		var err error
		r, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer r.Close()
	} else {
		r = os.Stdin
	}
	if err := f(file, r); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// eachDoc splits the input stream on YAML document separators and
// hands each document to f, re-emitting the separators on w.
func eachDoc(r io.Reader, w io.Writer, f func(doc []byte) error) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		if err := f(doc); err != nil {
			return fmt.Errorf("error in document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
