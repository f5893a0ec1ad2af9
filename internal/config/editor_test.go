package config

import (
	"reflect"
	"testing"
)

func TestMaterializeEditorPartialOverride(t *testing.T) {
	tree := map[string]any{
		"scrolloff":   int64(12),
		"line-number": "relative",
	}

	got, err := materializeEditor(tree)
	if err != nil {
		t.Fatalf("materializeEditor: %v", err)
	}

	want := DefaultEditorConfig()
	want.ScrollOff = 12
	want.LineNumber = "relative"
	if !reflect.DeepEqual(got, want) {
		t.Errorf("materializeEditor = %+v, want %+v", got, want)
	}
}

func TestMaterializeEditorNestedPartialOverride(t *testing.T) {
	tree := map[string]any{
		"search": map[string]any{
			"smart-case": false,
		},
	}

	got, err := materializeEditor(tree)
	if err != nil {
		t.Fatalf("materializeEditor: %v", err)
	}

	if got.Search.SmartCase {
		t.Error("search.smart-case should be overridden to false")
	}
	if !got.Search.WrapAround {
		t.Error("search.wrap-around should keep its default")
	}
}

func TestMaterializeEditorArraysReplace(t *testing.T) {
	tree := map[string]any{
		"shell":  []any{"fish", "-c"},
		"rulers": []any{int64(100)},
	}

	got, err := materializeEditor(tree)
	if err != nil {
		t.Fatalf("materializeEditor: %v", err)
	}
	if !reflect.DeepEqual(got.Shell, []string{"fish", "-c"}) {
		t.Errorf("Shell = %v", got.Shell)
	}
	if !reflect.DeepEqual(got.Rulers, []int{100}) {
		t.Errorf("Rulers = %v", got.Rulers)
	}
}

func TestMaterializeEditorRejections(t *testing.T) {
	trees := map[string]map[string]any{
		"unknown field":    {"scrollof": int64(5)},
		"wrong type":       {"mouse": "on"},
		"enum violation":   {"line-number": "none"},
		"nested unknown":   {"indent": map[string]any{"tabwidth": int64(2)}},
		"out of range":     {"indent": map[string]any{"tab-width": int64(64)}},
		"array wrong type": {"rulers": []any{"eighty"}},
	}

	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			if _, err := materializeEditor(tree); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
