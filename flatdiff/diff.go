package flatdiff

import (
	yamlflat "github.com/infinilabs/yaml-flat"
	"github.com/infinilabs/yaml-flat/debug"
	"github.com/infinilabs/yaml-flat/ir"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "<unknown kind>"
	}
}

// Change is one difference between two documents, addressed by the
// flattened path of the leaf it concerns. From is nil for Insert and
// To is nil for Delete.
type Change struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

// Diff flattens both documents and compares them path by path,
// returning the changes that turn a into b in sorted path order. Two
// equal documents produce a nil result.
func Diff(a, b *ir.Node) []Change {
	fa := yamlflat.Flatten(a)
	fb := yamlflat.Flatten(b)
	var res []Change

	aKeys := fa.Keys()
	bKeys := fb.Keys()
	i, j := 0, 0
	for i < len(aKeys) && j < len(bKeys) {
		switch {
		case aKeys[i] < bKeys[j]:
			v, _ := fa.Get(aKeys[i])
			res = append(res, Change{Path: aKeys[i], Kind: Delete, From: v})
			i++
		case aKeys[i] > bKeys[j]:
			v, _ := fb.Get(bKeys[j])
			res = append(res, Change{Path: bKeys[j], Kind: Insert, To: v})
			j++
		default:
			va, _ := fa.Get(aKeys[i])
			vb, _ := fb.Get(bKeys[j])
			if !ir.Equal(va, vb) {
				res = append(res, Change{Path: aKeys[i], Kind: Replace, From: va, To: vb})
			}
			i++
			j++
		}
	}
	for ; i < len(aKeys); i++ {
		v, _ := fa.Get(aKeys[i])
		res = append(res, Change{Path: aKeys[i], Kind: Delete, From: v})
	}
	for ; j < len(bKeys); j++ {
		v, _ := fb.Get(bKeys[j])
		res = append(res, Change{Path: bKeys[j], Kind: Insert, To: v})
	}
	if debug.Diff() {
		debug.Logf("flatdiff: %d keys vs %d keys, %d changes\n", fa.Len(), fb.Len(), len(res))
	}
	return res
}
