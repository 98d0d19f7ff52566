package loadbar

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// debugLevel represents the debug verbosity level.
type debugLevel int

const (
	// debugOff indicates debugging is disabled.
	debugOff debugLevel = 0
	// debugBasic enables basic debugging output.
	debugBasic debugLevel = 1
	// debugVerbose enables verbose debugging output with per-frame timings.
	debugVerbose debugLevel = 2
)

const debugEnvVar = "LOADBAR_DEBUG"

var (
	// currentDebugLevel caches the debug level to avoid repeated env var lookups.
	currentDebugLevel debugLevel
	// debugLevelOnce ensures debug level is initialized only once.
	debugLevelOnce sync.Once
	// debugStartTime is the timestamp when debug mode was initialized.
	debugStartTime time.Time
	// debugInitialized tracks if debug level has been initialized.
	debugInitialized bool
	// debugMu protects debug initialization state, the level and the output writer.
	debugMu sync.RWMutex
	// debugTestMode disables Once caching for testing (always re-read env var).
	debugTestMode bool
	// debugOutput receives debug lines. Frames go to the bar's writer, never here.
	debugOutput io.Writer = os.Stderr
)

// resetDebugLevel resets the debug level initialization state.
// This is intended for testing purposes only.
// In test mode, getDebugLevel() will always re-read the environment variable
// instead of using cached values, making it safe for tests to change LOADBAR_DEBUG.
func resetDebugLevel() {
	debugMu.Lock()
	defer debugMu.Unlock()

	debugTestMode = true
	debugInitialized = false
	currentDebugLevel = debugOff
	debugStartTime = time.Time{}
}

// setDebugOutput redirects debug lines and returns the previous writer.
func setDebugOutput(w io.Writer) io.Writer {
	debugMu.Lock()
	defer debugMu.Unlock()
	prev := debugOutput
	debugOutput = w
	return prev
}

func parseDebugLevel(v string) debugLevel {
	switch v {
	case "1":
		return debugBasic
	case "2":
		return debugVerbose
	default:
		return debugOff
	}
}

// getDebugLevel returns the current debug level based on the LOADBAR_DEBUG environment variable.
// LOADBAR_DEBUG=0 or unset: debugging disabled
// LOADBAR_DEBUG=1: basic debugging enabled
// LOADBAR_DEBUG=2: verbose debugging with render timings
func getDebugLevel() debugLevel {
	debugMu.RLock()
	testMode := debugTestMode
	debugMu.RUnlock()

	if testMode {
		debugMu.Lock()
		defer debugMu.Unlock()

		if !debugInitialized {
			debugStartTime = time.Now()
			debugInitialized = true
		}
		currentDebugLevel = parseDebugLevel(os.Getenv(debugEnvVar))
		return currentDebugLevel
	}

	debugLevelOnce.Do(func() {
		debugMu.Lock()
		defer debugMu.Unlock()

		debugStartTime = time.Now()
		currentDebugLevel = parseDebugLevel(os.Getenv(debugEnvVar))
		debugInitialized = true
	})

	debugMu.RLock()
	defer debugMu.RUnlock()
	return currentDebugLevel
}

// isDebugEnabled returns true if any level of debugging is enabled.
func isDebugEnabled() bool {
	return getDebugLevel() > debugOff
}

// isVerboseDebug returns true if verbose debugging is enabled.
func isVerboseDebug() bool {
	return getDebugLevel() >= debugVerbose
}

// debugLog writes a debug message with timestamp and component information.
// Only outputs if debugging is enabled. Format: [HH:MM:SS.mmm] [component] message
func debugLog(component, format string, args ...any) {
	if !isDebugEnabled() {
		return
	}

	debugMu.RLock()
	startTime := debugStartTime
	out := debugOutput
	debugMu.RUnlock()

	elapsed := time.Since(startTime)
	timestamp := fmt.Sprintf("%02d:%02d:%02d.%03d",
		int(elapsed.Hours()),
		int(elapsed.Minutes())%60,
		int(elapsed.Seconds())%60,
		elapsed.Milliseconds()%1000)

	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] [%s] %s\n", timestamp, component, message)
}

// debugLogVerbose writes a verbose debug message, only if verbose debugging is enabled.
func debugLogVerbose(component, format string, args ...any) {
	if !isVerboseDebug() {
		return
	}
	debugLog(component, format, args...)
}

// formatANSISequence returns a human-readable description of an ANSI escape sequence.
func formatANSISequence(sequence string) string {
	var description string
	switch sequence {
	case ansiClearScreen:
		description = "clear screen"
	case ansiCursorHome:
		description = "cursor home"
	default:
		description = "unknown sequence"
	}
	return fmt.Sprintf("%q (%s)", sequence, description)
}

// debugTimer helps measure operation timing for performance debugging.
type debugTimer struct {
	component string
	operation string
	start     time.Time
}

// startDebugTimer creates a timer for measuring operation duration.
// Returns nil unless verbose debugging is enabled.
func startDebugTimer(component, operation string) *debugTimer {
	if !isVerboseDebug() {
		return nil
	}
	return &debugTimer{
		component: component,
		operation: operation,
		start:     time.Now(),
	}
}

// stop logs the elapsed time for the operation.
func (dt *debugTimer) stop() {
	if dt == nil {
		return
	}
	debugLog(dt.component, "%s took %v", dt.operation, time.Since(dt.start))
}
