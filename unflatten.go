package yamlflat

import (
	"strings"

	"github.com/infinilabs/yaml-flat/debug"
	"github.com/infinilabs/yaml-flat/ir"
)

// Unflatten rebuilds a nested document from (path, value) pairs,
// consuming them in the order given. Each path is split on "." and
// walked from the root object, creating intermediate objects as
// needed; the value is linked in at the last segment.
//
// Two pairs conflict when their paths are identical or one is a
// strict prefix of the other; Unflatten then returns a
// *DuplicateValueError naming the path of the later pair and the
// segment at which the conflict was detected. Apart from the error's
// reported path, the result depends only on the set of pairs, not
// their order.
//
// Empty segments (from an empty path string or consecutive dots) are
// ordinary empty-string keys, not errors.
//
// The given values are linked into the returned tree without
// cloning: their Parent backlinks are rewritten, so a value taken
// from another tree afterwards reports its Root inside the rebuilt
// one. Clone values before passing them in to keep the source tree's
// backlinks intact. On error no partially built tree is exposed.
func Unflatten(pairs []Entry) (*ir.Node, error) {
	root := &ir.Node{Type: ir.ObjectType}
	for _, kv := range pairs {
		segs := strings.Split(kv.Path, dot)
		cur := root
		for i, seg := range segs {
			last := i == len(segs)-1
			existing := ir.Get(cur, seg)
			switch {
			case existing == nil && last:
				ir.Set(cur, seg, kv.Value)
			case existing == nil:
				next := &ir.Node{Type: ir.ObjectType}
				ir.Set(cur, seg, next)
				cur = next
			case last:
				// The leaf position is already taken, no matter by what.
				if debug.Unflatten() {
					debug.Logf("unflatten: conflict at %q on %q\n", kv.Path, seg)
				}
				return nil, &DuplicateValueError{Key: kv.Path, Token: seg}
			case existing.Type == ir.ObjectType:
				cur = existing
			default:
				// A strict prefix of this path was already claimed as a leaf.
				if debug.Unflatten() {
					debug.Logf("unflatten: conflict at %q on %q\n", kv.Path, seg)
				}
				return nil, &DuplicateValueError{Key: kv.Path, Token: seg}
			}
		}
	}
	return root, nil
}
