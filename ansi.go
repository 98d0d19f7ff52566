package loadbar

// ANSI escape codes emitted before a frame when clearing is enabled.
const (
	ansiClearScreen = "\033[2J" // Clear entire screen
	ansiCursorHome  = "\033[H"  // Move cursor to row 1, column 1
)
