package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/infinilabs/yaml-flat/format"
	"github.com/infinilabs/yaml-flat/ir"
)

var ErrTagged = errors.New("tagged nodes are not supported")

// Encode writes node to w as a YAML document, or JSON with
// EncodeFormat(format.JSONFormat).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.YAMLFormat, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	v, err := toAny(node)
	if err != nil {
		return err
	}
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	if es.format == format.JSONFormat {
		out, err = yaml.YAMLToJSON(out)
		if err != nil {
			return err
		}
		out = append(out, '\n')
	}
	_, err = w.Write(out)
	return err
}

func toAny(node *ir.Node) (any, error) {
	if node.Tag != "" {
		return nil, fmt.Errorf("%w: !%s", ErrTagged, node.Tag)
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		return numberAny(node), nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		vals := make([]any, len(node.Values))
		for i, v := range node.Values {
			av, err := toAny(v)
			if err != nil {
				return nil, err
			}
			vals[i] = av
		}
		return vals, nil
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			key, err := toAny(node.Fields[i])
			if err != nil {
				return nil, err
			}
			val, err := toAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			ms[i] = yaml.MapItem{Key: key, Value: val}
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("unknown node type %s", node.Type)
	}
}

func numberAny(node *ir.Node) any {
	if node.Int64 != nil {
		return *node.Int64
	}
	if node.Float64 != nil {
		return *node.Float64
	}
	if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
		return f
	}
	return node.Number
}
