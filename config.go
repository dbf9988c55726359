package slimfmt

import "sync/atomic"

// colorMode is the single process-wide toggle spec.md §5/§9 describe:
// never touched by the core engine, read by the diagnostic sink at
// the STDERR_ASSERT boundary and set by callers via SetColorMode. Relaxed atomic
// access is sufficient per spec.md §5.
var colorMode atomic.Bool

// SetColorMode atomically swaps the global color toggle and returns
// its previous value.
func SetColorMode(enabled bool) bool {
	return colorMode.Swap(enabled)
}

// ColorMode reports the current value of the global color toggle.
func ColorMode() bool {
	return colorMode.Load()
}

// AssertMode selects what happens when the engine hits a malformed
// spec in a debug build (spec.md §6).
type AssertMode int

const (
	// AssertOff: malformed specs produce best-effort output with no
	// diagnostic, as in a release build.
	AssertOff AssertMode = iota
	// AssertDebug: a fatal diagnostic (TruncatedField, ArgUnderflow)
	// triggers an assertion (panic). Other diagnostics, including
	// BadSpec for a malformed spec, do not panic and are not reported.
	AssertDebug
	// AssertStderr: malformed specs print one diagnostic line to
	// stderr (colorized when ColorMode is on) and execution
	// continues, per spec.md §6's STDERR_ASSERT mode.
	AssertStderr
)

var assertMode atomic.Int32

// SetAssertMode sets the process-wide assertion behavior and returns
// the previous mode.
func SetAssertMode(mode AssertMode) AssertMode {
	return AssertMode(assertMode.Swap(int32(mode)))
}

// CurrentAssertMode reports the active assertion mode.
func CurrentAssertMode() AssertMode {
	return AssertMode(assertMode.Load())
}

// verboseAssert gates whether a CategoryMismatch/BadBase diagnostic
// carries a go-spew dump of the offending argument or spec in its
// Detail field, for STDERR_ASSERT output that needs more than the
// one-line message to track down a malformed call site.
var verboseAssert atomic.Bool

// SetVerboseAssert atomically swaps the verbose-dump toggle and
// returns its previous value.
func SetVerboseAssert(enabled bool) bool {
	return verboseAssert.Swap(enabled)
}

// VerboseAssert reports the current value of the verbose-dump toggle.
func VerboseAssert() bool {
	return verboseAssert.Load()
}
