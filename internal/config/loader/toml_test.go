package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestTOMLLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
theme = "gruvbox"

[editor]
scrolloff = 7
mouse = false

[editor.search]
smart-case = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := NewTOMLLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := map[string]any{
		"theme": "gruvbox",
		"editor": map[string]any{
			"scrolloff": int64(7),
			"mouse":     false,
			"search": map[string]any{
				"smart-case": true,
			},
		},
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("Load() = %v, want %v", data, want)
	}
}

func TestTOMLLoaderLoadMissing(t *testing.T) {
	data, err := NewTOMLLoader(filepath.Join(t.TempDir(), "absent.toml")).Load()
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if data != nil {
		t.Errorf("missing file should yield nil data, got %v", data)
	}
}

func TestTOMLLoaderLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("theme = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewTOMLLoader(path).Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
}

type strictDoc struct {
	Theme *string        `toml:"theme"`
	Keys  map[string]any `toml:"keys"`
}

func TestLoadStrict(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("theme = \"dark\"\n[keys.normal]\ny = \"yank\"\n")},
	}

	var doc strictDoc
	found, err := NewTOMLLoaderWithFS(fsys, "config.toml").LoadStrict(&doc)
	if err != nil {
		t.Fatalf("LoadStrict() error: %v", err)
	}
	if !found {
		t.Fatal("LoadStrict() found = false for existing file")
	}
	if doc.Theme == nil || *doc.Theme != "dark" {
		t.Errorf("Theme = %v, want dark", doc.Theme)
	}
	if _, ok := doc.Keys["normal"]; !ok {
		t.Errorf("Keys = %v, missing normal", doc.Keys)
	}
}

func TestLoadStrictUnknownField(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("them = \"dark\"\n")},
	}

	var doc strictDoc
	_, err := NewTOMLLoaderWithFS(fsys, "config.toml").LoadStrict(&doc)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("unknown top-level field should be a parse error, got %v", err)
	}
}

func TestLoadStrictMissing(t *testing.T) {
	var doc strictDoc
	found, err := NewTOMLLoaderWithFS(fstest.MapFS{}, "config.toml").LoadStrict(&doc)
	if err != nil {
		t.Fatalf("LoadStrict() on missing file: %v", err)
	}
	if found {
		t.Error("LoadStrict() found = true for missing file")
	}
}
