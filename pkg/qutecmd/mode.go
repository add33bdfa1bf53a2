// SPDX-License-Identifier: MPL-2.0

package qutecmd

import "strings"

const (
	// ModeNormal is qutebrowser's normal mode.
	ModeNormal Mode = "normal"
	// ModeInsert is insert mode.
	ModeInsert Mode = "insert"
	// ModeCaret is caret (visual selection) mode.
	ModeCaret Mode = "caret"
	// ModePassthrough forwards all keys to the page.
	ModePassthrough Mode = "passthrough"
)

// Mode is a qutebrowser key mode that :enter-mode can switch to.
type Mode string

// Modes returns the modes EnterMode accepts.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeInsert, ModeCaret, ModePassthrough}
}

// String returns the mode name as qutebrowser spells it.
func (m Mode) String() string { return string(m) }

// Validate returns an *InvalidModeError if m is not one of Modes().
func (m Mode) Validate() error {
	switch m {
	case ModeNormal, ModeInsert, ModeCaret, ModePassthrough:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}

// ParseMode converts user input into a Mode. Matching ignores case and
// surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", &InvalidModeError{Value: Mode(s)}
	}
	return m, nil
}

func validModeList() string {
	modes := Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
