package config

import (
	_ "embed"
	"errors"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/halcyon-editor/halcyon/internal/config/loader"
	"github.com/halcyon-editor/halcyon/internal/config/merge"
)

//go:embed languages.toml
var defaultLangData []byte

// embeddedLangPath is the pseudo-path reported in errors for the compiled-in
// language document.
const embeddedLangPath = "languages.toml (embedded)"

var defaultLang = sync.OnceValues(func() (map[string]any, error) {
	var doc map[string]any
	err := toml.Unmarshal(defaultLangData, &doc)
	return doc, err
})

// DefaultLangConfig returns the compiled-in language configuration. The
// embedded document is decoded once and cached; callers get a deep copy
// they are free to merge over.
func DefaultLangConfig() (map[string]any, error) {
	doc, err := defaultLang()
	if err != nil {
		return nil, parseError(embeddedLangPath, err)
	}
	return merge.CloneTable(doc), nil
}

// LoadLangConfig layers the user and workspace language files over the
// compiled-in defaults, each at the standard merge depth. Language files
// are optional at every layer; a missing file is an empty overlay. The
// workspace file is consulted only when the merged document enables
// workspace-config, under the same trust rule as the main loader: the
// decision is made before the workspace overlay is read, so a workspace
// file cannot enable itself.
func LoadLangConfig(fsys loader.FileSystem, globalPath, workspacePath string) (map[string]any, error) {
	doc, err := DefaultLangConfig()
	if err != nil {
		return nil, err
	}

	doc, err = mergeLangFile(fsys, doc, globalPath)
	if err != nil {
		return nil, err
	}

	if workspaceEnabled(doc) && workspacePath != "" {
		doc, err = mergeLangFile(fsys, doc, workspacePath)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// mergeLangFile merges the document at path over base. A missing file
// leaves base unchanged.
func mergeLangFile(fsys loader.FileSystem, base map[string]any, path string) (map[string]any, error) {
	if path == "" {
		return base, nil
	}
	overlay, err := loader.NewTOMLLoaderWithFS(fsys, path).Load()
	if err != nil {
		var perr *loader.ParseError
		if errors.As(err, &perr) {
			return nil, parseError(path, err)
		}
		return nil, ioError(path, err)
	}
	if overlay == nil {
		return base, nil
	}
	return merge.Tables(base, overlay, merge.MaxDepth), nil
}

func workspaceEnabled(doc map[string]any) bool {
	enabled, ok := doc["workspace-config"].(bool)
	return ok && enabled
}
