// Package key parses the key-chord notation used in keymap configuration.
//
// A chord is zero or more single-letter modifier prefixes followed by a key
// name: "y", "A-F12", "S-C-a", "C-esc". Modifiers are S (shift), C (ctrl)
// and A (alt). Key names are either a single character or one of the named
// special keys (esc, ret, tab, space, backspace, del, arrows, F1-F12, ...).
package key

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptyChord   = errors.New("empty key chord")
	ErrInvalidChord = errors.New("invalid key chord")
)

// Modifier is a bitmask of chord modifiers.
type Modifier uint8

const (
	// ModShift is the S- prefix.
	ModShift Modifier = 1 << iota
	// ModCtrl is the C- prefix.
	ModCtrl
	// ModAlt is the A- prefix.
	ModAlt
)

// ModNone means no modifiers.
const ModNone Modifier = 0

// Has reports whether all modifiers in m are set.
func (m Modifier) Has(mod Modifier) bool { return m&mod == mod }

// Code identifies a key beyond its rune value.
type Code uint8

const (
	// CodeRune is a plain character key; the chord's Rune field holds it.
	CodeRune Code = iota
	CodeEscape
	CodeEnter
	CodeTab
	CodeSpace
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// specialNames maps lowercase key names to codes. Aliases point at the same
// code so both Vim-style and spelled-out names are accepted.
var specialNames = map[string]Code{
	"esc":       CodeEscape,
	"escape":    CodeEscape,
	"ret":       CodeEnter,
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"tab":       CodeTab,
	"space":     CodeSpace,
	"backspace": CodeBackspace,
	"bs":        CodeBackspace,
	"del":       CodeDelete,
	"delete":    CodeDelete,
	"ins":       CodeInsert,
	"insert":    CodeInsert,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pageup":    CodePageUp,
	"pagedown":  CodePageDown,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"minus":     CodeRune, // resolved to '-' in parseName
	"f1":        CodeF1,
	"f2":        CodeF2,
	"f3":        CodeF3,
	"f4":        CodeF4,
	"f5":        CodeF5,
	"f6":        CodeF6,
	"f7":        CodeF7,
	"f8":        CodeF8,
	"f9":        CodeF9,
	"f10":       CodeF10,
	"f11":       CodeF11,
	"f12":       CodeF12,
}

// canonicalName is the preferred rendering for each special code.
var canonicalName = map[Code]string{
	CodeEscape:    "esc",
	CodeEnter:     "ret",
	CodeTab:       "tab",
	CodeSpace:     "space",
	CodeBackspace: "backspace",
	CodeDelete:    "del",
	CodeInsert:    "ins",
	CodeHome:      "home",
	CodeEnd:       "end",
	CodePageUp:    "pageup",
	CodePageDown:  "pagedown",
	CodeUp:        "up",
	CodeDown:      "down",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
}

// Chord is a single parsed key chord.
type Chord struct {
	Mods Modifier
	Code Code
	// Rune holds the character for CodeRune chords.
	Rune rune
}

// ParseChord parses a chord specification.
func ParseChord(spec string) (Chord, error) {
	if spec == "" {
		return Chord{}, ErrEmptyChord
	}

	var mods Modifier
	rest := spec
	for len(rest) >= 2 && rest[1] == '-' && len(rest) > 2 {
		var mod Modifier
		switch rest[0] {
		case 'S':
			mod = ModShift
		case 'C':
			mod = ModCtrl
		case 'A':
			mod = ModAlt
		default:
			// Not a modifier prefix; the remainder is the key name.
			mod = ModNone
		}
		if mod == ModNone {
			break
		}
		if mods.Has(mod) {
			return Chord{}, fmt.Errorf("%w: repeated modifier in %q", ErrInvalidChord, spec)
		}
		mods |= mod
		rest = rest[2:]
	}

	chord, err := parseName(rest)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q", err, spec)
	}
	chord.Mods = mods
	return chord, nil
}

// parseName resolves the key-name portion of a chord.
func parseName(name string) (Chord, error) {
	if name == "" {
		return Chord{}, ErrEmptyChord
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Chord{Code: CodeRune, Rune: r}, nil
	}

	lower := strings.ToLower(name)
	code, ok := specialNames[lower]
	if !ok {
		return Chord{}, ErrInvalidChord
	}
	if lower == "minus" {
		return Chord{Code: CodeRune, Rune: '-'}, nil
	}
	return Chord{Code: code}, nil
}

// String renders the chord in canonical notation: modifiers in S-C-A order
// followed by the key name.
func (c Chord) String() string {
	var b strings.Builder
	if c.Mods.Has(ModShift) {
		b.WriteString("S-")
	}
	if c.Mods.Has(ModCtrl) {
		b.WriteString("C-")
	}
	if c.Mods.Has(ModAlt) {
		b.WriteString("A-")
	}
	if c.Code == CodeRune {
		b.WriteRune(c.Rune)
	} else {
		b.WriteString(canonicalName[c.Code])
	}
	return b.String()
}

// Names returns all recognized special key names, sorted. Useful for
// diagnostics when a chord fails to parse.
func Names() []string {
	names := make([]string, 0, len(specialNames))
	for name := range specialNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
