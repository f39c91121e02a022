package yamlflat

import (
	"testing"

	"github.com/infinilabs/yaml-flat/parse"
)

func FuzzFlattenRoundTrip(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`42`,
		`3.14`,
		`hello`,

		// Sequences (opaque leaves)
		`[]`,
		`a: [1, 2, 3]`,

		// Plain nesting
		`{a: {b: {c: null}}}`,
		`{a: 1, b: 2}`,
		`{a: {b: 1}, c: [x, y]}`,

		// Dotted keys already flat
		`{a.b: 1, a.c: 2}`,
		`cluster.fault_detection: {follower_check: {interval: 1000}}`,

		// Keys that collide after re-splitting
		`{a.b: 1, a: {b: 2}}`,
		`{a.b: 1, a: {b: {c: 2}}}`,

		// Non-string literal keys
		`{true: 1, false: 2}`,
		`{1: x, 2: y}`,

		// Empty-ish
		`{}`,
		`{a: {}}`,
		`{"": 1}`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := parse.Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Flatten must not panic on parsed input and must come out
		// with sorted keys.
		flat := Flatten(node)
		keys := flat.Keys()
		for i := 1; i < len(keys); i++ {
			if keys[i-1] >= keys[i] {
				t.Fatalf("keys out of order: %q >= %q", keys[i-1], keys[i])
			}
		}

		// If the flat form rebuilds without conflicts, re-flattening
		// the rebuilt tree must reproduce it exactly.
		back, err := Unflatten(flat.Entries())
		if err != nil {
			return // prefix conflicts after re-splitting are legal input
		}
		again := Flatten(back)
		if !flat.Equal(again) {
			t.Fatalf("flatten(unflatten(flat)) != flat for %q", data)
		}
	})
}
