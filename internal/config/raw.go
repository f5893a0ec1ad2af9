package config

import (
	"errors"

	"github.com/halcyon-editor/halcyon/internal/config/loader"
	"github.com/halcyon-editor/halcyon/internal/config/merge"
	"github.com/halcyon-editor/halcyon/internal/keymap"
)

// RawConfig is one layer's partially-specified configuration as read from a
// single file. Every field is optional; nil means "inherit from the layer
// beneath". RawConfig values are ephemeral: created per load, consumed by
// the merge step, and discarded.
type RawConfig struct {
	// WorkspaceConfig opts in to loading the workspace layer. Only a
	// trusted layer may set it; see mergeRaw.
	WorkspaceConfig *bool

	// Theme is the color theme name.
	Theme *string

	// Keys holds keybinding overrides per mode. It need not cover every
	// mode or binding; it only overrides and adds.
	Keys map[keymap.Mode]*keymap.KeyTrie

	// Editor is the untyped editor settings tree; its schema is owned by
	// the materializer, not the merge engine.
	Editor map[string]any
}

// rawDocument is the strict wire shape of a config file. Any top-level key
// outside this set is a parse error, so typos never pass silently.
type rawDocument struct {
	WorkspaceConfig *bool          `toml:"workspace-config"`
	Theme           *string        `toml:"theme"`
	Keys            map[string]any `toml:"keys"`
	Editor          map[string]any `toml:"editor"`
}

// DefaultRaw returns the compiled-in baseline layer: workspace loading
// disabled, the default keymap, no theme, no editor overrides.
func DefaultRaw() RawConfig {
	enabled := false
	return RawConfig{
		WorkspaceConfig: &enabled,
		Keys:            keymap.Default(),
	}
}

// loadRaw reads and strictly decodes one layer. found is false when the
// file doesn't exist; every other failure is a *LoadError.
func loadRaw(fsys loader.FileSystem, path string) (raw RawConfig, found bool, err error) {
	var doc rawDocument
	found, err = loader.NewTOMLLoaderWithFS(fsys, path).LoadStrict(&doc)
	if err != nil {
		var perr *loader.ParseError
		if errors.As(err, &perr) {
			return RawConfig{}, found, parseError(path, err)
		}
		return RawConfig{}, found, ioError(path, err)
	}
	if !found {
		return RawConfig{}, false, nil
	}

	keys, err := keymap.FromConfig(doc.Keys)
	if err != nil {
		return RawConfig{}, true, parseError(path, err)
	}

	return RawConfig{
		WorkspaceConfig: doc.WorkspaceConfig,
		Theme:           doc.Theme,
		Keys:            keys,
		Editor:          doc.Editor,
	}, true, nil
}

// mergeRaw layers overlay over base. Theme and editor follow the generic
// merge rules, keys follow the trie merge rules. workspace-config is trust
// gated: an untrusted overlay can never change it, so a workspace file
// cannot toggle its own enablement.
func mergeRaw(base, overlay RawConfig, trusted bool) RawConfig {
	out := RawConfig{
		WorkspaceConfig: base.WorkspaceConfig,
		Theme:           base.Theme,
	}
	if trusted && overlay.WorkspaceConfig != nil {
		out.WorkspaceConfig = overlay.WorkspaceConfig
	}
	if overlay.Theme != nil {
		out.Theme = overlay.Theme
	}
	out.Keys = keymap.MergeModes(base.Keys, overlay.Keys)
	out.Editor = merge.Tables(base.Editor, overlay.Editor, merge.MaxDepth)
	return out
}
