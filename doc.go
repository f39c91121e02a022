// Package yamlflat converts between nested YAML documents and their
// flattened form, in which every leaf is addressed by a single
// dot-joined path string.
//
// Flatten collapses a tree into an ordered path→value mapping;
// Unflatten rebuilds a tree from such a mapping, rejecting ambiguous
// input with a DuplicateValueError. Arrays are treated as opaque
// leaves and are never flattened element-wise.
//
//	node, _ := parse.Parse([]byte("a:\n  b:\n    c: null\n"))
//	flat := yamlflat.Flatten(node) // {"a.b.c": null}
//	back, _ := yamlflat.Unflatten(flat.Entries())
//
// Both operations are pure, synchronous computations over in-memory
// ir.Node trees; see the ir package for the tree representation and
// parse/encode for the text collaborators.
package yamlflat
