package slimfmt

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// requireUnifiedDiff fails t with a unified diff between want and got
// when they differ, instead of testify's default one-line mismatch —
// useful for the longer rendered strings formatter_test.go compares.
func requireUnifiedDiff(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("want %q, got %q (diff failed: %v)", want, got, err)
	}
	t.Fatalf("rendered output mismatch:\n%s", text)
}
