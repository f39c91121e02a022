// Package encode encodes IR nodes to YAML or JSON text.
//
// # Usage
//
//	// Encode to YAML
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to JSON
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/infinilabs/yaml-flat/ir - IR representation
//   - github.com/infinilabs/yaml-flat/parse - Parse text to IR
package encode
