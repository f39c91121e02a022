package yamlflat

import (
	"fmt"
	"strings"

	"github.com/infinilabs/yaml-flat/debug"
	"github.com/infinilabs/yaml-flat/ir"
)

const dot = "."

// Flatten converts a nested document into its flat form, addressing
// every leaf by the dot-joined sequence of object keys leading to it.
//
// Scalar leaves and arrays are inserted whole under their path;
// arrays are never descended into. Object keys are rendered to path
// segments via their canonical string form (booleans as
// "true"/"false", numbers in decimal). A bare scalar or array at the
// root, outside any object, reaches a leaf with an empty path and
// produces no entry.
//
// The result references the leaf nodes of the input tree rather than
// cloning them.
//
// Flatten cannot fail on well-formed input. It panics on a tagged
// node anywhere in the tree and on null or composite object keys;
// neither can arise from a correctly parsed document.
func Flatten(node *ir.Node) *Flat {
	out := &Flat{}
	flattenInto(out, nil, node)
	return out
}

func flattenInto(out *Flat, path []string, node *ir.Node) {
	if node.Tag != "" {
		panic(fmt.Sprintf("yamlflat: cannot flatten tagged node !%s", node.Tag))
	}
	switch node.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType, ir.ArrayType:
		// Arrays stay opaque: a leaf like any scalar.
		if len(path) == 0 {
			return
		}
		full := strings.Join(path, dot)
		if debug.Flatten() {
			debug.Logf("flatten: %s\n", full)
		}
		out.Set(full, node)
	case ir.ObjectType:
		for i := range node.Fields {
			flattenInto(out, append(path, node.Fields[i].KeyString()), node.Values[i])
		}
	default:
		panic(fmt.Sprintf("yamlflat: unknown node type %s", node.Type))
	}
}
