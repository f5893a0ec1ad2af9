package keymap

import (
	"reflect"
	"strings"
	"testing"
)

func TestFromConfig(t *testing.T) {
	raw := map[string]any{
		"insert": map[string]any{
			"y":     "move_line_down",
			"S-C-a": "delete_selection",
		},
		"normal": map[string]any{
			"A-F12": "move_next_word_end",
			"C-s":   []any{"commit_undo_checkpoint", "write_buffer"},
			"g": map[string]any{
				"label": "Goto",
				"d":     "goto_definition",
			},
		},
	}

	tries, err := FromConfig(raw)
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}

	insert := tries[ModeInsert]
	if leaf, ok := insert.Get("y"); !ok || leaf.Commands[0] != "move_line_down" {
		t.Errorf("insert y = %+v", leaf)
	}
	if leaf, ok := insert.Get("S-C-a"); !ok || leaf.Commands[0] != "delete_selection" {
		t.Errorf("insert S-C-a = %+v", leaf)
	}

	normal := tries[ModeNormal]
	if leaf, ok := normal.Get("A-F12"); !ok || leaf.Commands[0] != "move_next_word_end" {
		t.Errorf("normal A-F12 = %+v", leaf)
	}
	if leaf, ok := normal.Get("C-s"); !ok || !reflect.DeepEqual(leaf.Commands, []string{"commit_undo_checkpoint", "write_buffer"}) {
		t.Errorf("normal C-s = %+v", leaf)
	}

	sub, ok := normal.Get("g")
	if !ok || sub.Kind != KindNode {
		t.Fatalf("normal g = %+v", sub)
	}
	if sub.Name != "Goto" {
		t.Errorf("label not applied: %q", sub.Name)
	}
	if leaf, ok := sub.Get("d"); !ok || leaf.Commands[0] != "goto_definition" {
		t.Errorf("normal g d = %+v", leaf)
	}
}

func TestFromConfigNil(t *testing.T) {
	tries, err := FromConfig(nil)
	if err != nil {
		t.Fatalf("FromConfig(nil) error: %v", err)
	}
	if tries != nil {
		t.Errorf("FromConfig(nil) = %v, want nil", tries)
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		errPart string
	}{
		{
			name:    "unknown mode",
			raw:     map[string]any{"visual": map[string]any{"y": "yank"}},
			errPart: "unknown editing mode",
		},
		{
			name:    "mode value not a table",
			raw:     map[string]any{"normal": "yank"},
			errPart: "expected a table",
		},
		{
			name:    "invalid chord",
			raw:     map[string]any{"normal": map[string]any{"notakey": "yank"}},
			errPart: "invalid key chord",
		},
		{
			name:    "non-string command",
			raw:     map[string]any{"normal": map[string]any{"y": int64(7)}},
			errPart: "expected command",
		},
		{
			name:    "non-string in command list",
			raw:     map[string]any{"normal": map[string]any{"y": []any{"yank", int64(1)}}},
			errPart: "must be a string",
		},
		{
			name:    "empty command list",
			raw:     map[string]any{"normal": map[string]any{"y": []any{}}},
			errPart: "empty command list",
		},
		{
			name:    "non-string label",
			raw:     map[string]any{"normal": map[string]any{"g": map[string]any{"label": int64(1)}}},
			errPart: "label must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}
