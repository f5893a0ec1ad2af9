package keymap

import (
	"reflect"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    Mode
		wantErr bool
	}{
		{name: "normal", want: ModeNormal},
		{name: "insert", want: ModeInsert},
		{name: "select", want: ModeSelect},
		{name: "visual", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tt.name, err)
			continue
		}
		if mode != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.name, mode, tt.want)
		}
		if mode.String() != tt.name {
			t.Errorf("Mode.String() = %q, want %q", mode.String(), tt.name)
		}
	}
}

func TestMergeOverlayLeafWins(t *testing.T) {
	base := NewNode("Normal mode").
		Bind("g", NewNode("Goto").Bind("g", NewLeaf("goto_file_start")))
	overlay := NewNode("").
		Bind("g", NewLeaf("goto_definition"))

	merged := Merge(base, overlay)

	child, ok := merged.Get("g")
	if !ok {
		t.Fatal("chord g missing after merge")
	}
	if child.Kind != KindLeaf || !reflect.DeepEqual(child.Commands, []string{"goto_definition"}) {
		t.Errorf("overlay leaf did not replace base subtree: %+v", child)
	}
}

func TestMergeNodesUnion(t *testing.T) {
	base := NewNode("Normal mode").
		Bind("g", NewNode("Goto").
			Bind("g", NewLeaf("goto_file_start")).
			Bind("e", NewLeaf("goto_last_line")))
	overlay := NewNode("").
		Bind("g", NewNode("").
			Bind("d", NewLeaf("goto_definition")))

	merged := Merge(base, overlay)

	sub, ok := merged.Get("g")
	if !ok || sub.Kind != KindNode {
		t.Fatal("g subtree missing or not a node")
	}
	if sub.Name != "Goto" {
		t.Errorf("base display name not preserved: %q", sub.Name)
	}
	for chord, want := range map[string]string{
		"g": "goto_file_start",
		"e": "goto_last_line",
		"d": "goto_definition",
	} {
		leaf, ok := sub.Get(chord)
		if !ok || leaf.Kind != KindLeaf || leaf.Commands[0] != want {
			t.Errorf("chord %q: got %+v, want leaf %q", chord, leaf, want)
		}
	}
}

func TestMergeOverlayNameWins(t *testing.T) {
	base := NewNode("Old name")
	overlay := NewNode("New name").Bind("x", NewLeaf("noop"))

	if got := Merge(base, overlay).Name; got != "New name" {
		t.Errorf("Name = %q, want overlay's name", got)
	}
}

func TestMergeOmissionKeepsBase(t *testing.T) {
	base := defaultInsert()
	overlay := NewNode("").Bind("y", NewLeaf("move_line_down"))

	merged := Merge(base, overlay)

	// The new binding is present.
	leaf, ok := merged.Get("y")
	if !ok || leaf.Commands[0] != "move_line_down" {
		t.Fatalf("new binding missing: %+v", leaf)
	}

	// Every default binding survives.
	for _, chord := range base.Chords() {
		want, _ := base.Get(chord)
		got, ok := merged.Get(chord)
		if !ok {
			t.Errorf("default binding %q lost", chord)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("default binding %q changed: got %+v, want %+v", chord, got, want)
		}
	}
}

func TestMergeModesEmptyOverlay(t *testing.T) {
	def := Default()
	merged := MergeModes(def, nil)
	if !reflect.DeepEqual(merged, def) {
		t.Error("merging an empty overlay changed the default keymap")
	}

	merged = MergeModes(def, map[Mode]*KeyTrie{})
	if !reflect.DeepEqual(merged, def) {
		t.Error("merging an empty map changed the default keymap")
	}
}

func TestMergeModesOverlayOnlyMode(t *testing.T) {
	base := map[Mode]*KeyTrie{
		ModeNormal: defaultNormal(),
	}
	overlay := map[Mode]*KeyTrie{
		ModeInsert: NewNode("Insert mode").Bind("y", NewLeaf("move_line_down")),
	}

	merged := MergeModes(base, overlay)

	if len(merged) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(merged))
	}
	leaf, ok := merged[ModeInsert].Get("y")
	if !ok || leaf.Commands[0] != "move_line_down" {
		t.Errorf("overlay-only mode not carried over: %+v", leaf)
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	base := map[Mode]*KeyTrie{ModeNormal: defaultNormal()}
	overlay := map[Mode]*KeyTrie{
		ModeNormal: NewNode("").Bind("q", NewLeaf("record_macro")),
	}

	merged := MergeModes(base, overlay)
	merged[ModeNormal].Bind("z", NewLeaf("added_after"))

	if _, ok := base[ModeNormal].Get("z"); ok {
		t.Error("merged trie shares structure with base")
	}
	if _, ok := overlay[ModeNormal].Get("z"); ok {
		t.Error("merged trie shares structure with overlay")
	}
}

func TestLookup(t *testing.T) {
	trie := defaultNormal()

	leaf, ok := trie.Lookup("g", "e")
	if !ok || leaf.Commands[0] != "goto_last_line" {
		t.Errorf("Lookup(g, e) = %+v, %v", leaf, ok)
	}
	if _, ok := trie.Lookup("g", "nope"); ok {
		t.Error("Lookup of unbound chord succeeded")
	}
}

func TestWalkVisitsLeaves(t *testing.T) {
	trie := NewNode("").
		Bind("a", NewLeaf("one")).
		Bind("g", NewNode("").Bind("b", NewLeaf("two", "three")))

	var got [][]string
	trie.Walk(func(path, commands []string) {
		entry := append(append([]string{}, path...), commands...)
		got = append(got, entry)
	})

	want := [][]string{
		{"a", "one"},
		{"g", "b", "two", "three"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() visited %v, want %v", got, want)
	}
}

func TestDefaultCoversAllModes(t *testing.T) {
	def := Default()
	for _, mode := range []Mode{ModeNormal, ModeInsert, ModeSelect} {
		trie, ok := def[mode]
		if !ok {
			t.Errorf("default keymap missing mode %s", mode)
			continue
		}
		if trie.Kind != KindNode || trie.Len() == 0 {
			t.Errorf("default %s trie is empty", mode)
		}
	}

	// Fresh copies: mutating one call's result must not leak into the next.
	def[ModeNormal].Bind("zz", NewLeaf("bogus"))
	if _, ok := Default()[ModeNormal].Get("zz"); ok {
		t.Error("Default() returned a shared trie")
	}
}
