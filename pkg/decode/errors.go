package decode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Causes reported by the decoder itself. Type mismatches and syntax errors
// carry the underlying encoding/json error instead.
var (
	// ErrUnknownField is reported in ModeStrict for a member the record
	// shape does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownVariant is reported for an enumeration value outside the
	// known set (every mode except ModeLenient).
	ErrUnknownVariant = errors.New("unknown enum variant")

	// ErrMissingField is reported when a required member is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrNull is reported when null is given for a non-nullable member.
	ErrNull = errors.New("null value for non-nullable field")
)

// Path locates a member inside a payload. Object members are plain names,
// array elements are bracketed indexes such as "[3]".
type Path []string

// String renders the path in dotted form, e.g. data[3].latestFiles[0].algo.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Last returns the final segment of the path, or "" for the root.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) field(name string) Path {
	return p.push(name)
}

func (p Path) index(i int) Path {
	return p.push("[" + strconv.Itoa(i) + "]")
}

// push copies so sibling paths never share a backing array.
func (p Path) push(seg string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, seg)
}

// Error is returned when a payload does not match the target shape.
type Error struct {
	// Body is the raw payload that failed to decode.
	Body []byte

	// Path locates the member that failed. Empty for payload-level errors
	// such as invalid JSON.
	Path Path

	// Cause is the underlying reason.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("decode: %v", e.Cause)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Cause)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// fieldError is the walker's internal failure; Decode attaches the body.
type fieldError struct {
	path  Path
	cause error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.path, e.cause)
}
