// Package keymap defines the keybinding trie and its merge rules.
//
// Each editing mode owns one KeyTrie. A trie node is either a leaf bound to
// one or more command names, or an inner node mapping key chords to child
// tries. Layered configuration merges user tries over the compiled-in
// defaults: a leaf in the overlay always wins outright, inner nodes union
// their children, and a binding can never be deleted by omission.
package keymap

import (
	"fmt"

	"github.com/halcyon-editor/halcyon/internal/key"
)

// Mode is a top-level editing mode.
type Mode uint8

const (
	// ModeNormal is the default modal state.
	ModeNormal Mode = iota
	// ModeInsert is text insertion.
	ModeInsert
	// ModeSelect extends selections while moving.
	ModeSelect
)

// String returns the mode's config-file name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeSelect:
		return "select"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name from a config file.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "normal":
		return ModeNormal, nil
	case "insert":
		return ModeInsert, nil
	case "select":
		return ModeSelect, nil
	default:
		return 0, fmt.Errorf("unknown editing mode %q", name)
	}
}

// Kind distinguishes the two trie node variants.
type Kind uint8

const (
	// KindLeaf is a chord bound to commands.
	KindLeaf Kind = iota
	// KindNode is a nested chord-to-trie mapping.
	KindNode
)

// KeyTrie is one node of a keybinding trie.
//
// Exactly one variant is populated: a leaf carries Commands, a node carries
// a display name plus an ordered chord-to-child mapping.
type KeyTrie struct {
	Kind Kind

	// Commands is the command sequence bound to a leaf.
	Commands []string

	// Name is the node's display name (e.g. "Insert mode").
	Name string

	order    []string
	children map[string]*KeyTrie
}

// NewLeaf creates a leaf bound to the given command sequence.
func NewLeaf(commands ...string) *KeyTrie {
	return &KeyTrie{Kind: KindLeaf, Commands: commands}
}

// NewNode creates an empty inner node with a display name.
func NewNode(name string) *KeyTrie {
	return &KeyTrie{
		Kind:     KindNode,
		Name:     name,
		children: make(map[string]*KeyTrie),
	}
}

// Bind sets the child at chord, appending to the node's ordering on first
// insert. Binding on a leaf is a programming error.
func (t *KeyTrie) Bind(chord string, child *KeyTrie) *KeyTrie {
	if t.Kind != KindNode {
		panic("keymap: Bind on a leaf trie")
	}
	if _, exists := t.children[chord]; !exists {
		t.order = append(t.order, chord)
	}
	t.children[chord] = child
	return t
}

// Get returns the child bound at chord.
func (t *KeyTrie) Get(chord string) (*KeyTrie, bool) {
	if t.Kind != KindNode {
		return nil, false
	}
	child, ok := t.children[chord]
	return child, ok
}

// Len returns the number of children of a node, zero for a leaf.
func (t *KeyTrie) Len() int { return len(t.order) }

// Chords returns the node's chords in binding order.
func (t *KeyTrie) Chords() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Walk visits every leaf reachable from t, passing the chord path and the
// bound commands. Children are visited in binding order.
func (t *KeyTrie) Walk(visit func(path []string, commands []string)) {
	t.walk(nil, visit)
}

func (t *KeyTrie) walk(path []string, visit func(path []string, commands []string)) {
	if t.Kind == KindLeaf {
		visit(path, t.Commands)
		return
	}
	for _, chord := range t.order {
		t.children[chord].walk(append(path, chord), visit)
	}
}

// Clone creates a deep copy of the trie.
func (t *KeyTrie) Clone() *KeyTrie {
	if t == nil {
		return nil
	}
	if t.Kind == KindLeaf {
		commands := make([]string, len(t.Commands))
		copy(commands, t.Commands)
		return &KeyTrie{Kind: KindLeaf, Commands: commands}
	}
	clone := NewNode(t.Name)
	for _, chord := range t.order {
		clone.Bind(chord, t.children[chord].Clone())
	}
	return clone
}

// Merge merges overlay over base and returns a new trie. A leaf on either
// side means overlay replaces base outright; two inner nodes union their
// children recursively, keeping base's display name unless overlay names
// itself. Chords bound only in base survive unchanged.
func Merge(base, overlay *KeyTrie) *KeyTrie {
	if overlay == nil {
		return base.Clone()
	}
	if base == nil || base.Kind != KindNode || overlay.Kind != KindNode {
		return overlay.Clone()
	}

	merged := base.Clone()
	if overlay.Name != "" {
		merged.Name = overlay.Name
	}
	for _, chord := range overlay.order {
		overlayChild := overlay.children[chord]
		if baseChild, ok := merged.children[chord]; ok {
			merged.Bind(chord, Merge(baseChild, overlayChild))
		} else {
			merged.Bind(chord, overlayChild.Clone())
		}
	}
	return merged
}

// MergeModes merges per-mode overlay tries over base. The result contains
// every mode present in either side; modes present in both merge their
// tries with Merge.
func MergeModes(base, overlay map[Mode]*KeyTrie) map[Mode]*KeyTrie {
	out := make(map[Mode]*KeyTrie, len(base)+len(overlay))
	for mode, trie := range base {
		out[mode] = trie.Clone()
	}
	for mode, overlayTrie := range overlay {
		if baseTrie, ok := out[mode]; ok {
			out[mode] = Merge(baseTrie, overlayTrie)
		} else {
			out[mode] = overlayTrie.Clone()
		}
	}
	return out
}

// Lookup resolves a chord path from the root, returning the trie reached.
func (t *KeyTrie) Lookup(path ...string) (*KeyTrie, bool) {
	current := t
	for _, chord := range path {
		child, ok := current.Get(chord)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// validateChord checks a chord string parses under the chord grammar.
func validateChord(chord string) error {
	if _, err := key.ParseChord(chord); err != nil {
		return err
	}
	return nil
}
