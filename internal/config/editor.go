package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/halcyon-editor/halcyon/internal/config/schema"
)

// EditorConfig is the typed editor settings section. Field names mirror the
// kebab-case keys of the [editor] table and of the embedded schema in
// internal/config/schema.
type EditorConfig struct {
	// ScrollOff is the minimum number of lines kept visible around the cursor.
	ScrollOff int `toml:"scrolloff"`

	// ScrollLines is the number of lines scrolled per mouse wheel step.
	ScrollLines int `toml:"scroll-lines"`

	// Mouse enables mouse support.
	Mouse bool `toml:"mouse"`

	// MiddleClickPaste pastes the primary selection on middle click.
	MiddleClickPaste bool `toml:"middle-click-paste"`

	// LineNumber is the gutter style: "absolute" or "relative".
	LineNumber string `toml:"line-number"`

	// CursorLine highlights the line the cursor is on.
	CursorLine bool `toml:"cursorline"`

	// AutoCompletion shows completion suggestions while typing.
	AutoCompletion bool `toml:"auto-completion"`

	// AutoFormat formats the buffer on save.
	AutoFormat bool `toml:"auto-format"`

	// CompletionTriggerLen is the characters typed before completion triggers.
	CompletionTriggerLen int `toml:"completion-trigger-len"`

	// IdleTimeoutMS is the idle time before hover and completion fire.
	IdleTimeoutMS int `toml:"idle-timeout-ms"`

	// TrueColor forces true-color output.
	TrueColor bool `toml:"true-color"`

	// Rulers are the columns to draw vertical rulers at.
	Rulers []int `toml:"rulers"`

	// Shell is the command used for external commands.
	Shell []string `toml:"shell"`

	// TextWidth is the soft wrap and reflow width.
	TextWidth int `toml:"text-width"`

	// Search configures search behavior.
	Search SearchConfig `toml:"search"`

	// FilePicker configures the file picker.
	FilePicker FilePickerConfig `toml:"file-picker"`

	// Indent configures indentation defaults.
	Indent IndentConfig `toml:"indent"`
}

// SearchConfig is the [editor.search] table.
type SearchConfig struct {
	// SmartCase searches case-insensitively unless the pattern has uppercase.
	SmartCase bool `toml:"smart-case"`

	// WrapAround continues from the other end of the buffer.
	WrapAround bool `toml:"wrap-around"`
}

// FilePickerConfig is the [editor.file-picker] table.
type FilePickerConfig struct {
	// Hidden skips hidden files.
	Hidden bool `toml:"hidden"`

	// FollowSymlinks follows symlinks while walking.
	FollowSymlinks bool `toml:"follow-symlinks"`

	// MaxDepth limits the directory walk; 0 means unlimited.
	MaxDepth int `toml:"max-depth"`
}

// IndentConfig is the [editor.indent] table.
type IndentConfig struct {
	// TabWidth is the columns a tab occupies.
	TabWidth int `toml:"tab-width"`

	// Unit is the string inserted per indent level.
	Unit string `toml:"unit"`
}

// DefaultEditorConfig returns the compiled-in editor settings.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		ScrollOff:            5,
		ScrollLines:          3,
		Mouse:                true,
		MiddleClickPaste:     true,
		LineNumber:           "absolute",
		CursorLine:           false,
		AutoCompletion:       true,
		AutoFormat:           true,
		CompletionTriggerLen: 2,
		IdleTimeoutMS:        250,
		TrueColor:            false,
		Rulers:               nil,
		Shell:                []string{"sh", "-c"},
		TextWidth:            80,
		Search: SearchConfig{
			SmartCase:  true,
			WrapAround: true,
		},
		FilePicker: FilePickerConfig{
			Hidden:         true,
			FollowSymlinks: true,
			MaxDepth:       0,
		},
		Indent: IndentConfig{
			TabWidth: 4,
			Unit:     "\t",
		},
	}
}

// materializeEditor validates the merged editor tree against the embedded
// schema and applies it on top of the defaults. Unknown fields and wrong
// scalar types are rejected here and nowhere else.
func materializeEditor(tree map[string]any) (EditorConfig, error) {
	s, err := schema.Editor()
	if err != nil {
		return EditorConfig{}, err
	}
	if err := schema.NewValidator(s).Validate(tree); err != nil {
		return EditorConfig{}, err
	}

	// The tree is valid; round-trip it through TOML onto the defaults so
	// only the fields actually present override.
	cfg := DefaultEditorConfig()
	data, err := toml.Marshal(tree)
	if err != nil {
		return EditorConfig{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return EditorConfig{}, err
	}
	return cfg, nil
}
