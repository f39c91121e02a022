package yamlflat

import (
	"errors"
	"testing"

	"github.com/infinilabs/yaml-flat/encode"
	"github.com/infinilabs/yaml-flat/ir"
)

func TestUnflattenLayers(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Entry
		want  string
	}{
		{"one layer", []Entry{
			{"a", ir.Null()},
			{"b", ir.FromBool(false)},
			{"c", ir.FromInt(1)},
			{"d", ir.FromString("hello")},
		}, `
a: null
b: false
c: 1
d: hello`},
		{"two layers", []Entry{
			{"a.a", ir.Null()},
			{"a.b", ir.FromBool(false)},
			{"a.c", ir.FromInt(1)},
			{"a.d", ir.FromString("hello")},
		}, `
a:
  a: null
  b: false
  c: 1
  d: hello`},
		{"three layers", []Entry{
			{"a.a.a", ir.Null()},
			{"a.a.b", ir.FromBool(false)},
			{"a.a.c", ir.FromInt(1)},
			{"a.a.d", ir.FromString("hello")},
		}, `
a:
  a:
    a: null
    b: false
    c: 1
    d: hello`},
		{"shared prefixes", []Entry{
			{"a.a.a", ir.Null()},
			{"a.a.b", ir.FromBool(false)},
		}, `
a:
  a:
    a: null
    b: false`},
		{"mixed depths", []Entry{
			{"a.b.c", ir.FromInt(1)},
			{"a.d", ir.FromInt(2)},
			{"e", ir.FromInt(3)},
		}, `
a:
  b:
    c: 1
  d: 2
e: 3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unflatten(tt.pairs)
			if err != nil {
				t.Fatalf("Unflatten() error: %v", err)
			}
			want := mustParse(t, tt.want)
			if !ir.Equal(got, want) {
				t.Errorf("Unflatten() = %s, want %s",
					encode.MustString(got), encode.MustString(want))
			}
		})
	}
}

func TestUnflattenDuplicateValue(t *testing.T) {
	tests := []struct {
		name      string
		pairs     []Entry
		wantKey   string
		wantToken string
	}{
		{"same key twice", []Entry{
			{"a", ir.Null()},
			{"a", ir.FromBool(false)},
		}, "a", "a"},
		{"shorter then longer", []Entry{
			{"a.b", ir.Null()},
			{"a.b.c", ir.FromBool(false)},
		}, "a.b.c", "b"},
		{"longer then shorter", []Entry{
			{"a.b.c", ir.Null()},
			{"a.b", ir.FromBool(false)},
		}, "a.b", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unflatten(tt.pairs)
			if err == nil {
				t.Fatalf("Unflatten() expected error")
			}
			var dup *DuplicateValueError
			if !errors.As(err, &dup) {
				t.Fatalf("Unflatten() error = %v, want DuplicateValueError", err)
			}
			if dup.Key != tt.wantKey || dup.Token != tt.wantToken {
				t.Errorf("got {Key: %q, Token: %q}, want {Key: %q, Token: %q}",
					dup.Key, dup.Token, tt.wantKey, tt.wantToken)
			}
		})
	}
}

func TestUnflattenOrderIndependence(t *testing.T) {
	fwd := []Entry{
		{"a.b", ir.FromInt(1)},
		{"a.c", ir.FromInt(2)},
		{"d", ir.FromInt(3)},
	}
	rev := []Entry{
		{"d", ir.FromInt(3)},
		{"a.c", ir.FromInt(2)},
		{"a.b", ir.FromInt(1)},
	}
	n1, err := Unflatten(fwd)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := Unflatten(rev)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n1, n2) {
		t.Errorf("order of pairs changed the result: %s vs %s",
			encode.MustString(n1), encode.MustString(n2))
	}
}

func TestUnflattenEmptySegments(t *testing.T) {
	// An empty path or consecutive separators yield empty-string
	// keys, accepted as ordinary segments.
	got, err := Unflatten([]Entry{{"", ir.FromInt(1)}})
	if err != nil {
		t.Fatalf("Unflatten() error: %v", err)
	}
	want := ir.FromMap(map[string]*ir.Node{"": ir.FromInt(1)})
	if !ir.Equal(got, want) {
		t.Errorf("empty path: got %s", encode.MustString(got))
	}

	got, err = Unflatten([]Entry{{"a..b", ir.FromInt(1)}})
	if err != nil {
		t.Fatalf("Unflatten() error: %v", err)
	}
	want = ir.FromMap(map[string]*ir.Node{
		"a": ir.FromMap(map[string]*ir.Node{
			"": ir.FromMap(map[string]*ir.Node{
				"b": ir.FromInt(1),
			}),
		}),
	})
	if !ir.Equal(got, want) {
		t.Errorf("a..b: got %s", encode.MustString(got))
	}
}

func TestUnflattenIntoMappingValue(t *testing.T) {
	// A mapping inserted as a leaf value is a mapping like any other
	// for later pairs: descending into it works, and colliding with
	// one of its keys is a duplicate.
	mapping := func() *ir.Node {
		return ir.FromMap(map[string]*ir.Node{"m": ir.FromInt(1)})
	}

	got, err := Unflatten([]Entry{
		{"a", mapping()},
		{"a.b", ir.FromInt(2)},
	})
	if err != nil {
		t.Fatalf("Unflatten() error: %v", err)
	}
	want := mustParse(t, `
a:
  m: 1
  b: 2`)
	if !ir.Equal(got, want) {
		t.Errorf("got %s, want %s", encode.MustString(got), encode.MustString(want))
	}

	_, err = Unflatten([]Entry{
		{"a", mapping()},
		{"a.m", ir.FromInt(2)},
	})
	var dup *DuplicateValueError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateValueError, got %v", err)
	}
	if dup.Key != "a.m" || dup.Token != "m" {
		t.Errorf("got {Key: %q, Token: %q}, want {Key: %q, Token: %q}",
			dup.Key, dup.Token, "a.m", "m")
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`
a:
  b:
    c: null`,
		`
x:
  y: true
  z: null
  str: hello
w:
  v: false
str:
  n: 1`,
		`
list: [1, 2, 3]
nested:
  list: [a, b]`,
	}

	for _, doc := range docs {
		orig := mustParse(t, doc)
		back, err := Unflatten(Flatten(orig).Entries())
		if err != nil {
			t.Fatalf("round trip of %q failed: %v", doc, err)
		}
		if !ir.Equal(back, orig) {
			t.Errorf("round trip of %q: got %s", doc, encode.MustString(back))
		}
	}
}

func TestUnflattenRelinksValues(t *testing.T) {
	// Values are linked in without cloning, so their backlinks move
	// into the rebuilt tree.
	orig := mustParse(t, `
a:
  b: 1`)
	leaf := ir.Get(ir.Get(orig, "a"), "b")
	back, err := Unflatten(Flatten(orig).Entries())
	if err != nil {
		t.Fatal(err)
	}
	if leaf.Root() != back {
		t.Errorf("leaf root = %p, want the rebuilt tree %p", leaf.Root(), back)
	}
}

func TestRoundTripDottedKeys(t *testing.T) {
	// A dotted source key re-splits into nested mappings on rebuild,
	// so the rebuilt tree differs from the original by construction.
	// The flattened form is the stable fixed point.
	doc := `
cluster.fault_detection:
  follower_check:
    interval: 1000
routing.allocation.same_shard.host: false`
	orig := mustParse(t, doc)
	flat := Flatten(orig)
	back, err := Unflatten(flat.Entries())
	if err != nil {
		t.Fatalf("round trip of %q failed: %v", doc, err)
	}
	if ir.Equal(back, orig) {
		t.Errorf("rebuilt tree unexpectedly equals the dotted-key original")
	}
	cluster := ir.Get(back, "cluster")
	if cluster == nil || ir.Get(cluster, "fault_detection") == nil {
		t.Errorf("dotted key not re-split: %s", encode.MustString(back))
	}
	if !Flatten(back).Equal(flat) {
		t.Errorf("re-flattening the rebuilt tree changed the flat form: %s",
			encode.MustString(Flatten(back).Node()))
	}
}
