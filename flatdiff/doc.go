// Package flatdiff computes diffs between two documents through
// their flattened forms.
//
// # Usage
//
//	changes := flatdiff.Diff(oldNode, newNode)
//	r := flatdiff.NewRenderer(os.Stdout, true)
//	err := r.Render(changes)
//
// Each change names the flattened path of the leaf it concerns, so
// the output reads like a diff of two property files even when the
// inputs are deeply nested.
//
// # Related Packages
//
//   - github.com/infinilabs/yaml-flat - Flatten/Unflatten conversions
//   - github.com/infinilabs/yaml-flat/ir - IR representation
package flatdiff
