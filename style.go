package loadbar

import (
	"errors"
	"strings"
)

// Style selects how a bar is drawn.
type Style uint32

// ErrInvalidStyle is returned when parsing an invalid style string.
var ErrInvalidStyle = errors.New("invalid bar style")

const (
	// Standard is a single-line bar filled with solid blocks.
	Standard Style = iota
	// Wave is a five-row sine wave that grows with progress and shifts phase on every step.
	Wave
)

// MustParseStyle parses a style string or panics.
func MustParseStyle(s string) Style {
	style, err := ParseStyle(s)
	if err != nil {
		panic(err)
	}
	return style
}

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case Standard:
		return "standard"
	case Wave:
		return "wave"
	default:
		return "unknown"
	}
}

// ParseStyle parses a style string into a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "bar":
		return Standard, nil
	case "wave", "sine":
		return Wave, nil
	default:
		return Standard, ErrInvalidStyle
	}
}
