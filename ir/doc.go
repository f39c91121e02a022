// Package ir provides the generic tree representation for YAML documents.
//
// # Overview
//
// The ir package defines the data structures the conversion layer
// works on. All documents (whether parsed from text or created
// programmatically) are represented as ir.Node trees.
//
// The IR is a simple recursive structure with no position
// information, making it purely semantic.
//
// # Node Structure
//
// A Node represents a single value in a document. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// Each node maintains parent-child relationships, allowing navigation
// through the tree structure.
//
// The IR works as a recursive tagged union, where values are placed
// in fields depending on the node type.
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there will always be the same number of fields as
// values. Fields must be literal nodes: string, bool, or number
// typed. Keys are unique within an object.
//
// Number values are placed under:
//
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither Int64 nor Float64 can
//     represent it
//
// A non-empty Tag marks a YAML-annotated value. The conversion layer
// does not support tagged nodes and fails fast on them.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Comparison
//
// Compare imposes a deterministic total order on nodes; Equal tests
// value equality, with object key order not significant.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes
// from multiple goroutines, you must synchronize access yourself or
// clone nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/infinilabs/yaml-flat/parse - Parses text into IR nodes
//   - github.com/infinilabs/yaml-flat/encode - Encodes IR nodes to text
//   - github.com/infinilabs/yaml-flat - Flatten/Unflatten conversions
package ir
