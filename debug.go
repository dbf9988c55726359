package slimfmt

import "github.com/davecgh/go-spew/spew"

// DumpArg renders an ArgValue's full internal state (kind, every
// backing field) for debug logging. Unlike TypeName, which surfaces
// just the diagnostic-facing category, this is meant for "why did
// this field render the way it did" troubleshooting.
func DumpArg(v ArgValue) string {
	return spew.Sdump(v)
}

// DumpSpec renders a ReplacementSpec's full internal state, useful
// when tracking down why a field's alignment or base came out wrong.
func DumpSpec(spec ReplacementSpec) string {
	return spew.Sdump(spec)
}
