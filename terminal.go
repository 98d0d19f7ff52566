package loadbar

import (
	"os"

	"golang.org/x/term"
)

// SizeFunc reports the terminal dimensions in character cells.
// ok is false when no terminal is attached, in which case the bar draws nothing.
type SizeFunc func() (width, height int, ok bool)

// StdoutSize queries the terminal connected to standard output.
func StdoutSize() (width, height int, ok bool) {
	return fileSize(os.Stdout)
}

// FileSize returns a SizeFunc that queries the terminal behind f.
func FileSize(f *os.File) SizeFunc {
	return func() (int, int, bool) {
		return fileSize(f)
	}
}

// FixedSize returns a SizeFunc that always reports the given dimensions.
func FixedSize(width, height int) SizeFunc {
	return func() (int, int, bool) {
		return width, height, true
	}
}

// NoTerminal is a SizeFunc that always reports dimensions as unavailable.
func NoTerminal() (width, height int, ok bool) {
	return 0, 0, false
}

func fileSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		debugLogVerbose("TERM", "size query failed on fd %d: %v", f.Fd(), err)
		return 0, 0, false
	}
	// Some pseudo terminals answer 0x0 before they are sized.
	if w <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
