// Package parse decodes YAML (or JSON) text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("a:\n  b: 1\n"))
//
// Decoding goes through goccy/go-yaml with ordered maps, so object
// key order and the types of literal keys (bool, number, string)
// survive into the IR.
//
// # Related Packages
//
//   - github.com/infinilabs/yaml-flat/ir - IR representation
//   - github.com/infinilabs/yaml-flat/encode - Encode IR to text
package parse
