package slimfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/clarete/slimfmt/ascii"
)

// Format renders fmtStr against args and returns the resulting string,
// discarding any diagnostics beyond what the current AssertMode
// surfaces (spec.md §6's format() entry point; FormatAssert is the
// null() counterpart).
func Format(fmtStr string, args ...any) string {
	buf := NewSmallBuffer(0)
	FormatInto(buf, fmtStr, args...)
	return buf.String()
}

// FormatInto renders fmtStr against args straight into buf, returning
// the number of bytes appended and every diagnostic raised. This is
// the engine's real entry point; Format, PrintTo and PrintlnTo are all
// built on it.
func FormatInto(buf *SmallBuffer, fmtStr string, args ...any) (int, []Diagnostic) {
	n, diags := formatWith(buf, fmtStr, Args(args...))
	reportDiagnostics(fmtStr, diags)
	return n, diags
}

// PrintTo renders fmtStr against args and writes the result to w.
func PrintTo(w io.Writer, fmtStr string, args ...any) (int, error) {
	buf := NewSmallBuffer(0)
	FormatInto(buf, fmtStr, args...)
	return w.Write(buf.Bytes())
}

// PrintlnTo is PrintTo with a trailing newline.
func PrintlnTo(w io.Writer, fmtStr string, args ...any) (int, error) {
	buf := NewSmallBuffer(0)
	FormatInto(buf, fmtStr, args...)
	buf.Push('\n')
	return w.Write(buf.Bytes())
}

// reportDiagnostics applies the process-wide AssertMode to a finished
// format call's diagnostics (spec.md §6): AssertOff is silent,
// AssertDebug panics on the first fatal diagnostic, AssertStderr logs
// every diagnostic to stderr (colorized when ColorMode is set) and
// lets execution continue.
func reportDiagnostics(fmtStr string, diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}
	switch CurrentAssertMode() {
	case AssertOff:
		return
	case AssertDebug:
		for _, d := range diags {
			if d.Kind.Fatal() {
				panic(fmt.Sprintf("slimfmt: %s (format string %q)", d.Error(), fmtStr))
			}
		}
	case AssertStderr:
		for _, d := range diags {
			line := fmt.Sprintf("slimfmt: %s\n", d.Error())
			if d.Detail != "" {
				line += d.Detail
			}
			if ColorMode() {
				line = ascii.Color(ascii.DefaultTheme.ForSeverity(severityFor(d.Kind)), "%s", line)
			}
			fmt.Fprint(os.Stderr, line)
		}
	}
}

// severityFor maps a diagnostic kind to the ascii.Severity bucket its
// theme color is picked from (errors.go's DiagKind.Fatal groups
// TruncatedField/ArgUnderflow; the rest split by how much of the
// field's output survives).
func severityFor(kind DiagKind) ascii.Severity {
	switch kind {
	case TruncatedField, ArgUnderflow:
		return ascii.SeverityFatal
	case BadSpec, BadBase:
		return ascii.SeverityDropped
	case CategoryMismatch:
		return ascii.SeverityMismatch
	default: // ArgOverflow
		return ascii.SeverityNotice
	}
}

// FormatAssert runs fmtStr/args purely for its diagnostics, ignoring
// the rendered output. It mirrors spec.md §6's debug-build assertion
// hook for call sites that want to validate a format string (e.g. in
// a test) without caring about the text it produces.
func FormatAssert(fmtStr string, args ...any) []Diagnostic {
	buf := NewSmallBuffer(0)
	_, diags := FormatInto(buf, fmtStr, args...)
	return diags
}
