package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML reads a YAML mapping keeping document order. Nested mappings
// become *Record and sequences []any.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeNode(node)
	if err != nil {
		return err
	}
	out, ok := v.(*Record)
	if !ok {
		return fmt.Errorf("record: line %d: expected a mapping", node.Line)
	}
	*r = *out
	return nil
}

// MarshalYAML emits an ordered mapping. Undefined values are omitted.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range r.keys {
		v := r.values[k]
		if v == Undefined {
			continue
		}
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("record key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

// DecodeNode converts a YAML node into plain values, turning mappings into
// ordered *Record values instead of Go maps.
func DecodeNode(node *yaml.Node) (any, error) {
	return decodeNode(node)
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeNode(node.Content[0])
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.MappingNode:
		r := New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			kn, vn := node.Content[i], node.Content[i+1]
			if kn.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("record: line %d: mapping key must be a scalar", kn.Line)
			}
			v, err := decodeNode(vn)
			if err != nil {
				return nil, err
			}
			r.Set(kn.Value, v)
		}
		return r, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
