package focuslog

import (
	"sort"

	"gopkg.in/yaml.v3"

	"tableflip.dev/focuslog/pkg/entry"
)

// Normalize decodes every raw value of a stored log. Keys are kept verbatim
// and not validated; a malformed key never matches a grid day. Go maps carry
// no order, so keys come out in lexical order, which is chronological for
// well formed keys.
func Normalize(raw map[string]any) Log {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var l Log
	for _, k := range keys {
		l.put(k, entry.Decode(raw[k]))
	}
	return l
}

// NormalizeNode is Normalize for a YAML mapping node, keeping document
// order. Anything other than a mapping yields an empty log; values that fail
// to decode become zero entries.
func NormalizeNode(node *yaml.Node) Log {
	var l Log
	for node != nil && (node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode) {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}
		if len(node.Content) == 0 {
			return l
		}
		node = node.Content[0]
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return l
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			raw = nil
		}
		l.put(key, entry.Decode(raw))
	}
	return l
}
