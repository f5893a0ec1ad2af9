// Package paths resolves the locations of Halcyon's configuration files.
//
// The global config lives under the user config directory
// ($XDG_CONFIG_HOME/halcyon, falling back to ~/.config/halcyon). The
// workspace config lives in a .halcyon directory found by walking up from
// the working directory, so invoking the editor anywhere inside a project
// picks up that project's overrides.
package paths

import (
	"os"
	"path/filepath"
)

const (
	// AppDir is the directory name used under the user config root.
	AppDir = "halcyon"

	// WorkspaceDir is the per-project config directory name.
	WorkspaceDir = ".halcyon"

	// ConfigName is the main configuration file name.
	ConfigName = "config.toml"

	// LangConfigName is the language configuration file name.
	LangConfigName = "languages.toml"
)

// ConfigDir returns the user configuration directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDir)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppDir)
}

// ConfigFile returns the path of the global configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigName)
}

// LangFile returns the path of the global language configuration file.
func LangFile() string {
	return filepath.Join(ConfigDir(), LangConfigName)
}

// WorkspaceRoot walks up from dir looking for a directory containing
// WorkspaceDir. Returns the containing directory and true when found.
func WorkspaceRoot(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, WorkspaceDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// WorkspaceConfigFile returns the workspace configuration file path for the
// workspace containing dir. The file itself may not exist; the caller
// treats absence as an empty layer. Returns "" when dir is not inside a
// workspace.
func WorkspaceConfigFile(dir string) string {
	root, ok := WorkspaceRoot(dir)
	if !ok {
		return ""
	}
	return filepath.Join(root, WorkspaceDir, ConfigName)
}

// WorkspaceLangFile returns the workspace language configuration file path,
// or "" when dir is not inside a workspace.
func WorkspaceLangFile(dir string) string {
	root, ok := WorkspaceRoot(dir)
	if !ok {
		return ""
	}
	return filepath.Join(root, WorkspaceDir, LangConfigName)
}
