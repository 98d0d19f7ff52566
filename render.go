package loadbar

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	blockChar   = "█"
	loadingText = "loading"

	// standardReserved is the number of columns kept free for the
	// "loading N/M |" label and the borders of a standard bar.
	standardReserved = 30

	waveRows      = 5
	waveMiddleRow = 2
	waveMaxHeight = 5
	wavePeriod    = 5.0
	wavePhase     = 6.0
	waveAmplitude = 2.5
)

// Geometry is the size of the drawing area in character cells.
// Height is carried for completeness; neither style depends on it.
type Geometry struct {
	Width  int
	Height int
}

// Render returns the complete text of one frame, every line terminated by a newline.
// Unknown styles are drawn as Standard.
func Render(style Style, g Geometry, step, total int) string {
	switch style {
	case Wave:
		return strings.Join(RenderWave(g.Width, step, total), "\n") + "\n"
	default:
		return RenderStandard(g.Width, step, total) + "\n"
	}
}

// RenderStandard draws the single-line bar for a terminal of the given width.
// The returned line has no trailing newline.
func RenderStandard(width, step, total int) string {
	usable := clampWidth(width - standardReserved)
	filled := filledWidth(usable, step, total)
	empty := clampWidth(usable - filled)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d/%d |", loadingText, step, total)
	sb.WriteString(strings.Repeat(blockChar, filled))
	sb.WriteString(strings.Repeat(" ", empty))
	sb.WriteString("|")
	return sb.String()
}

// RenderWave draws the five rows of the wave bar for a terminal of the given width.
// Every row is as wide as the label plus the usable width plus two borders.
func RenderWave(width, step, total int) []string {
	label := progressLabel(loadingText, step, total)
	labelWidth := runewidth.StringWidth(label)
	usable := clampWidth(width - labelWidth - 2)
	filled := filledWidth(usable, step, total)
	blank := strings.Repeat(" ", labelWidth)

	rows := make([]string, waveRows)
	for i := range rows {
		var sb strings.Builder
		sb.Grow(labelWidth + 2 + usable*len(blockChar))
		if i == waveMiddleRow {
			sb.WriteString(label)
		} else {
			sb.WriteString(blank)
		}
		sb.WriteString("|")
		for x := 0; x < usable; x++ {
			if x < filled && WaveHeight(x, step, total) == i {
				sb.WriteString(blockChar)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|")
		rows[i] = sb.String()
	}
	return rows
}

// WaveHeight returns the row, in [0, 5], that the wave occupies at column x.
// A height of 5 falls below the last drawn row and leaves the column empty.
func WaveHeight(x, step, total int) int {
	phase := float64(x)/wavePeriod + float64(step)*wavePhase/float64(total)
	h := int(math.Round(math.Sin(phase)*waveAmplitude + waveAmplitude))
	return min(max(h, 0), waveMaxHeight)
}

// progressLabel formats the counter shown left of a bar.
func progressLabel(text string, step, total int) string {
	if text == "" {
		return fmt.Sprintf(" %d/%d ", step, total)
	}
	return fmt.Sprintf("%s %d/%d ", text, step, total)
}

// filledWidth is floor(usable * step/total). It exceeds usable once step passes total.
func filledWidth(usable, step, total int) int {
	fraction := float64(step) / float64(total)
	return clampWidth(int(math.Floor(float64(usable) * fraction)))
}

func clampWidth(w int) int {
	if w < 0 {
		return 0
	}
	return w
}
