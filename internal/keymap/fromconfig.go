package keymap

import (
	"fmt"
	"sort"
)

// labelKey is the reserved chord name that sets a node's display name
// inside a [keys.*] table.
const labelKey = "label"

// FromConfig decodes the [keys] tree of a configuration document into
// per-mode tries. Top-level keys are mode names; below that, a string or
// array of strings binds a leaf and a table opens a nested node. Decoded
// maps have no stable ordering, so chords are bound in sorted order.
//
// Unknown mode names, invalid chords, and values of any other type are
// errors, surfaced to the caller as parse failures for the owning file.
func FromConfig(raw map[string]any) (map[Mode]*KeyTrie, error) {
	if raw == nil {
		return nil, nil
	}

	out := make(map[Mode]*KeyTrie, len(raw))
	for _, name := range sortedKeys(raw) {
		mode, err := ParseMode(name)
		if err != nil {
			return nil, err
		}
		table, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("keys.%s: expected a table of bindings, got %T", name, raw[name])
		}
		trie, err := decodeNode("keys."+name, "", table)
		if err != nil {
			return nil, err
		}
		out[mode] = trie
	}
	return out, nil
}

func decodeNode(path, name string, table map[string]any) (*KeyTrie, error) {
	node := NewNode(name)
	for _, chord := range sortedKeys(table) {
		if chord == labelKey {
			label, ok := table[chord].(string)
			if !ok {
				return nil, fmt.Errorf("%s.%s: label must be a string", path, chord)
			}
			node.Name = label
			continue
		}
		if err := validateChord(chord); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		childPath := path + "." + chord
		switch val := table[chord].(type) {
		case string:
			node.Bind(chord, NewLeaf(val))
		case []any:
			commands, err := decodeCommands(childPath, val)
			if err != nil {
				return nil, err
			}
			node.Bind(chord, NewLeaf(commands...))
		case map[string]any:
			child, err := decodeNode(childPath, "", val)
			if err != nil {
				return nil, err
			}
			node.Bind(chord, child)
		default:
			return nil, fmt.Errorf("%s: expected command, command list, or table, got %T", childPath, val)
		}
	}
	return node, nil
}

func decodeCommands(path string, vals []any) ([]string, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: empty command list", path)
	}
	commands := make([]string, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s: command %d must be a string, got %T", path, i, v)
		}
		commands[i] = s
	}
	return commands, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
