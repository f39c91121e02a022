package parse

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/infinilabs/yaml-flat/format"
	"github.com/infinilabs/yaml-flat/ir"
)

var ErrParse = errors.New("parse error")

// Parse decodes a single YAML document into an ir.Node tree. Object
// key order is preserved, and literal bool/number keys keep their
// types.
//
// The format options record the caller's intent; JSON runs through
// the same decoder, YAML being a superset.
//
// Empty input decodes to a null node.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromAny(v)
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			node, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			key, err := keyFromAny(item.Key)
			if err != nil {
				return nil, err
			}
			if !key.Type.IsLeaf() || key.Type == ir.NullType {
				return nil, fmt.Errorf("%w: object key must be a literal, got %s", ErrParse, key.Type)
			}
			val, err := fromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrParse, v)
	}
}

// keyFromAny decodes a mapping key. The ordered-map decoder hands
// scalar keys back as their raw text, so bool and number literals are
// recovered by running the text through the YAML scalar rules again.
// Anything that does not re-read as a bool or number stays a string
// key.
func keyFromAny(v any) (*ir.Node, error) {
	s, ok := v.(string)
	if !ok {
		return fromAny(v)
	}
	var scalar any
	if err := yaml.Unmarshal([]byte(s), &scalar); err != nil {
		return ir.FromString(s), nil
	}
	switch scalar.(type) {
	case bool, int, int64, uint, uint64, float32, float64:
		return fromAny(scalar)
	}
	return ir.FromString(s), nil
}

func fromUint(x uint64) *ir.Node {
	if x <= math.MaxInt64 {
		return ir.FromInt(int64(x))
	}
	return &ir.Node{Type: ir.NumberType, Number: fmt.Sprintf("%d", x)}
}
