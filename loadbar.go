// Package loadbar draws a step-driven progress bar on the terminal.
// Two styles are available: a static filled bar and an animated sine wave.
//
//	bar := loadbar.New(100).ShouldClear().OfType(loadbar.Wave).Init()
//	for range 100 {
//		work()
//		bar.Step()
//	}
//
// A Bar is meant to be driven by a single goroutine.
package loadbar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidTotal is the panic value's cause when a bar is created with fewer than one step.
var ErrInvalidTotal = errors.New("total must be at least 1")

// Builder configures a Bar. Every setter returns an updated copy,
// so a Builder value can be reused as a template.
type Builder struct {
	total int
	clear bool
	style Style
	out   io.Writer
	size  SizeFunc
}

// New returns a Builder for a bar of total steps.
// It panics if total is less than 1.
func New(total int) Builder {
	if total < 1 {
		panic(fmt.Errorf("loadbar: %w, got %d", ErrInvalidTotal, total))
	}
	return Builder{
		total: total,
		clear: false,
		style: Standard,
	}
}

// ShouldClear makes the bar clear the screen and home the cursor before every frame,
// so it redraws in place instead of scrolling.
func (b Builder) ShouldClear() Builder {
	b.clear = true
	return b
}

// OfType sets the drawing style.
func (b Builder) OfType(style Style) Builder {
	b.style = style
	return b
}

// WithWriter sets where frames are written. Defaults to os.Stdout.
func (b Builder) WithWriter(w io.Writer) Builder {
	b.out = w
	return b
}

// WithSizeFunc sets the terminal size probe. Defaults to StdoutSize.
func (b Builder) WithSizeFunc(fn SizeFunc) Builder {
	b.size = fn
	return b
}

// Init creates the bar at step 0 and draws the first frame.
func (b Builder) Init() *Bar {
	out := b.out
	if out == nil {
		out = os.Stdout
	}
	size := b.size
	if size == nil {
		size = StdoutSize
	}

	bar := &Bar{
		total: b.total,
		clear: b.clear,
		style: b.style,
		out:   out,
		size:  size,
	}
	debugLog("BAR", "init total=%d style=%s clear=%v", bar.total, bar.style, bar.clear)
	bar.render()
	return bar
}

// Bar is a live progress bar. It is not safe for concurrent use.
type Bar struct {
	total   int
	current int
	clear   bool
	style   Style
	out     io.Writer
	size    SizeFunc
}

// Step advances the bar by one and redraws it.
// Stepping past the total is allowed and draws an overfull bar.
func (b *Bar) Step() {
	b.current++
	if b.current > b.total {
		debugLogVerbose("BAR", "stepped past total: %d/%d", b.current, b.total)
	}
	b.render()
}

// Current returns the number of steps taken so far.
func (b *Bar) Current() int {
	return b.current
}

// Total returns the number of steps the bar was created with.
func (b *Bar) Total() int {
	return b.total
}

// Style returns the drawing style.
func (b *Bar) Style() Style {
	return b.style
}

// Done reports whether the bar has reached its total.
func (b *Bar) Done() bool {
	return b.current >= b.total
}

// render writes one frame. A missing terminal skips the drawing silently.
func (b *Bar) render() {
	timer := startDebugTimer("RENDER", fmt.Sprintf("%s frame %d/%d", b.style, b.current, b.total))
	defer timer.stop()

	var sb strings.Builder
	if b.clear {
		sb.WriteString(ansiClearScreen)
		sb.WriteString(ansiCursorHome)
		debugLogVerbose("RENDER", "emit %s, %s",
			formatANSISequence(ansiClearScreen), formatANSISequence(ansiCursorHome))
	}

	if width, height, ok := b.size(); ok {
		if b.style == Standard && width < standardReserved {
			debugLog("RENDER", "terminal width %d is narrow, bar collapsed", width)
		}
		sb.WriteString(Render(b.style, Geometry{Width: width, Height: height}, b.current, b.total))
	} else {
		debugLog("RENDER", "terminal size unavailable, frame %d/%d skipped", b.current, b.total)
	}

	if sb.Len() == 0 {
		return
	}
	if _, err := io.WriteString(b.out, sb.String()); err != nil {
		debugLog("RENDER", "write failed: %v", err)
	}
}
