package decode

import (
	"fmt"
	"strings"
)

// Mode selects how the decoder treats members and enumeration values that
// the target record shape does not know about.
type Mode string

const (
	// ModeStrict rejects unknown members and unknown enumeration values.
	ModeStrict Mode = "strict"

	// ModeLenient captures unknown members into Extra and maps unknown
	// enumeration values to UnknownVariant.
	ModeLenient Mode = "lenient"

	// ModeIgnore drops unknown members but still rejects unknown
	// enumeration values.
	ModeIgnore Mode = "ignore"
)

// DefaultMode is the mode used when none is configured.
const DefaultMode = ModeIgnore

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeStrict, ModeLenient, ModeIgnore:
		return true
	default:
		return false
	}
}

// ParseMode converts a configuration string into a Mode.
// The empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return DefaultMode, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown decode mode %q (want strict, lenient or ignore)", s)
	}
	return m, nil
}
