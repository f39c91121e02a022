package yamlflat

import (
	"slices"

	"github.com/infinilabs/yaml-flat/ir"
)

// Entry is one (path, value) pair of a flat mapping.
type Entry struct {
	Path  string
	Value *ir.Node
}

// Flat is an ordered mapping from dot-joined path strings to leaf
// nodes. Keys are kept in sorted order, so iteration, encoding and
// comparison are deterministic regardless of the insertion order of
// the source document. The zero Flat is empty and ready to use.
type Flat struct {
	keys   []string
	values []*ir.Node
}

func (f *Flat) Len() int {
	return len(f.keys)
}

// Get returns the value stored under path, if any.
func (f *Flat) Get(path string) (*ir.Node, bool) {
	i, ok := slices.BinarySearch(f.keys, path)
	if !ok {
		return nil, false
	}
	return f.values[i], true
}

// Set inserts value under path, keeping keys sorted. An existing
// entry under the same path is replaced.
func (f *Flat) Set(path string, value *ir.Node) {
	i, ok := slices.BinarySearch(f.keys, path)
	if ok {
		f.values[i] = value
		return
	}
	f.keys = slices.Insert(f.keys, i, path)
	f.values = slices.Insert(f.values, i, value)
}

// Keys returns the paths in sorted order. The returned slice is a
// copy.
func (f *Flat) Keys() []string {
	return slices.Clone(f.keys)
}

// Entries returns the (path, value) pairs in sorted path order, in
// the form Unflatten consumes.
func (f *Flat) Entries() []Entry {
	res := make([]Entry, len(f.keys))
	for i, k := range f.keys {
		res[i] = Entry{Path: k, Value: f.values[i]}
	}
	return res
}

// Node wraps the flat mapping as a single object node with one
// string-keyed field per entry, suitable for encoding.
func (f *Flat) Node() *ir.Node {
	kvs := make([]ir.KeyVal, len(f.keys))
	for i, k := range f.keys {
		kvs[i] = ir.KeyVal{Key: ir.FromString(k), Val: f.values[i]}
	}
	return ir.FromKeyVals(kvs)
}

// Equal reports whether two flat mappings hold equal values under
// equal key sets.
func (f *Flat) Equal(o *Flat) bool {
	if f.Len() != o.Len() {
		return false
	}
	for i, k := range f.keys {
		if k != o.keys[i] || !ir.Equal(f.values[i], o.values[i]) {
			return false
		}
	}
	return true
}
