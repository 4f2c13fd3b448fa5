package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed map that remembers insertion order. The
// emitters' ordering contracts are "catalog declared order" and "selection
// file order", which plain Go maps cannot provide, so every mapping whose
// order reaches the generated script is decoded into one of these.
type OrderedMap[V any] struct {
	keys  []string
	items map[string]V
}

// UnmarshalYAML decodes a YAML (or JSON) mapping node, keeping the key order
// of the source document. yaml.v3 exposes mapping entries as alternating
// key/value nodes in node.Content.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got %s node", nodeKind(node))
	}
	m.keys = nil
	m.items = make(map[string]V, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}
	return nil
}

// Set inserts or replaces a value. New keys are appended to the order.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.items == nil {
		m.items = make(map[string]V)
	}
	if _, exists := m.items[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	value, ok := m.items[key]
	return value, ok
}

// Keys returns the keys in insertion order. Callers must not modify the
// returned slice.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// nodeKind names a yaml.Node kind for error messages.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
