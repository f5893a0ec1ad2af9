package config

import (
	"io/fs"

	"github.com/halcyon-editor/halcyon/internal/config/loader"
	"github.com/halcyon-editor/halcyon/internal/keymap"
)

// Config is the effective configuration: every field fully specified,
// immutable after construction. One Config is built per load; the rest of
// the editor only ever reads it.
type Config struct {
	// WorkspaceConfig records whether the workspace layer was enabled.
	WorkspaceConfig bool

	// Theme is the color theme name, empty when unset.
	Theme string

	// Keys holds the merged keymap, covering at least the built-in
	// bindings for every mode.
	Keys map[keymap.Mode]*keymap.KeyTrie

	// Editor holds the typed editor settings.
	Editor EditorConfig
}

// Default returns the compiled-in configuration, the value callers fall
// back to when a load fails outright.
func Default() *Config {
	return &Config{
		Keys:   keymap.Default(),
		Editor: DefaultEditorConfig(),
	}
}

// Load computes the effective configuration from the global file at
// globalPath and, when enabled by the trusted layers, the workspace file at
// workspacePath. An empty workspacePath means "not inside a workspace".
func Load(globalPath, workspacePath string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), globalPath, workspacePath)
}

// LoadWithFS is Load over an explicit file system.
//
// The load proceeds default → global → workspace. The global file is
// mandatory: missing or unreadable is a fatal KindIO error, unparseable is
// fatal KindParse. The workspace file is consulted only if the merged
// trusted layers enable it; a missing workspace file is an empty overlay,
// anything else wrong with it is fatal.
func LoadWithFS(fsys loader.FileSystem, globalPath, workspacePath string) (*Config, error) {
	global, found, err := loadRaw(fsys, globalPath)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ioError(globalPath, fs.ErrNotExist)
	}

	merged := mergeRaw(DefaultRaw(), global, true)

	if *merged.WorkspaceConfig && workspacePath != "" {
		workspace, found, err := loadRaw(fsys, workspacePath)
		if err != nil {
			return nil, err
		}
		if found {
			merged = mergeRaw(merged, workspace, false)
		}
	}

	return materialize(merged)
}

// materialize converts a fully merged raw tree into the final typed
// configuration, filling every unset field with its default. The editor
// tree is the only part that can still fail here, with a KindSchema error.
func materialize(raw RawConfig) (*Config, error) {
	cfg := &Config{
		Keys: raw.Keys,
	}
	if raw.WorkspaceConfig != nil {
		cfg.WorkspaceConfig = *raw.WorkspaceConfig
	}
	if raw.Theme != nil {
		cfg.Theme = *raw.Theme
	}
	if cfg.Keys == nil {
		cfg.Keys = keymap.Default()
	}

	if raw.Editor == nil {
		cfg.Editor = DefaultEditorConfig()
		return cfg, nil
	}
	editor, err := materializeEditor(raw.Editor)
	if err != nil {
		return nil, schemaError("", err)
	}
	cfg.Editor = editor
	return cfg, nil
}
