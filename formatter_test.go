package slimfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_WorkedExamples(t *testing.T) {
	tests := []struct {
		name     string
		fmt      string
		args     []any
		expected string
	}{
		{"plain substitution", "Testing, {}!", []any{"123"}, "Testing, 123!"},
		{"left align explicit width", "Testing, {: +9}!", []any{123}, "Testing, 123      !"},
		{"dynamic width centered", "Testing, {: =*%D}!", []any{9, "123"}, "Testing,    123   !"},
		{"binary", "{%b}", []any{42}, "101010"},
		{"octal", "{%o}", []any{42}, "52"},
		{"hex upper", "{%X}", []any{42}, "2A"},
		{"radix 5", "{%r5}", []any{789942}, "200234232"},
		{"right align negative hex", "{: -10%x}", []any{-123}, "       -7b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.fmt, tt.args...)
			requireUnifiedDiff(t, tt.expected, got)
		})
	}
}

func TestFormat_LiteralPreservation(t *testing.T) {
	s := "no fields here, just text"
	assert.Equal(t, s, Format(s))
}

func TestFormat_BraceEscape(t *testing.T) {
	assert.Equal(t, "{", Format("{{"))
	assert.Equal(t, "{{", Format("{{{{"))
	assert.Equal(t, "{x}}", Format("{{x}}"), "only '{' doubling is an escape; a literal '}' needs no escaping outside a field")
}

func TestFormat_UnterminatedField(t *testing.T) {
	buf := NewSmallBuffer(0)
	_, diags := FormatInto(buf, "abc {def")
	require.Len(t, diags, 1)
	assert.Equal(t, TruncatedField, diags[0].Kind)
	assert.Equal(t, "abc ", buf.String())
}

func TestFormat_UnterminatedFieldRecoversAtNextOpenBrace(t *testing.T) {
	got := Format("a {b {}", "x")
	assert.Equal(t, "a b x", got)
}

func TestFormat_ArgUnderflow(t *testing.T) {
	buf := NewSmallBuffer(0)
	n, diags := FormatInto(buf, "{} {}", "only-one")
	require.Len(t, diags, 1)
	assert.Equal(t, ArgUnderflow, diags[0].Kind)
	assert.Equal(t, "only-one ", buf.String())
	assert.Equal(t, len("only-one "), n)
}

func TestFormat_ArgUnderflowReportsLateFieldOffset(t *testing.T) {
	buf := NewSmallBuffer(0)
	fmtStr := "ab {} cd {}"
	_, diags := FormatInto(buf, fmtStr, "only")
	require.Len(t, diags, 1)
	assert.Equal(t, ArgUnderflow, diags[0].Kind)
	assert.Equal(t, strings.Index(fmtStr[6:], "{")+6, diags[0].Pos, "Pos should point at the second field's '{', not byte 0")
}

func TestFormat_CategoryMismatchReportsFieldOffset(t *testing.T) {
	buf := NewSmallBuffer(0)
	fmtStr := "{} {%dc}"
	_, diags := FormatInto(buf, fmtStr, "ok", 42)
	require.Len(t, diags, 1)
	assert.Equal(t, CategoryMismatch, diags[0].Kind)
	assert.Equal(t, strings.Index(fmtStr[1:], "{")+1, diags[0].Pos, "Pos should point at the mismatched field's '{', not byte 0")
}

func TestFormat_ArgOverflow(t *testing.T) {
	buf := NewSmallBuffer(0)
	_, diags := FormatInto(buf, "{}", "used", "unused")
	require.Len(t, diags, 1)
	assert.Equal(t, ArgOverflow, diags[0].Kind)
}

func TestFormat_BadSpecDropsField(t *testing.T) {
	got := Format("a{%q}b", 1)
	assert.Equal(t, "ab", got)
}

func TestFormat_BadBaseSkipsValueKeepsPadding(t *testing.T) {
	got := Format("[{: 5%r99}]", 7)
	assert.Equal(t, "[     ]", got)
}

func TestFormat_CenterSymmetry(t *testing.T) {
	got := Format("{: =6}", "ab")
	assert.Equal(t, "  ab  ", got)
}

func TestFormat_CenterOddRemainderGoesRight(t *testing.T) {
	got := Format("{: =5}", "ab")
	assert.Equal(t, " ab  ", got)
}

func TestFormat_PointerWriter(t *testing.T) {
	got := Format("{%xp}", uintptr(0xBEEF))
	assert.Equal(t, "0xBEEF", got)
}

func TestFormat_PointerArbitraryRadixPrefix(t *testing.T) {
	got := Format("{%r5}", uintptr(7))
	assert.Equal(t, "0z12", got)
}

func TestFormat_CharExtraFromString(t *testing.T) {
	got := Format("{%dc}", "zebra")
	assert.Equal(t, "z", got)
}

func TestFormat_GenericArgument(t *testing.T) {
	type point struct{ x, y int }
	p := point{3, 4}
	got := Format("{}", NewGeneric(func(h *Handle) {
		h.WriteByte('(')
		h.WriteInt(int64(p.x))
		h.WriteString(", ")
		h.WriteInt(int64(p.y))
		h.WriteByte(')')
	}))
	assert.Equal(t, "(3, 4)", got)
}

type namedPoint struct{ x, y int }

func (p namedPoint) FormatTo(h *Handle) {
	h.WriteByte('<')
	h.WriteInt(int64(p.x))
	h.WriteByte(',')
	h.WriteInt(int64(p.y))
	h.WriteByte('>')
}

func TestFormat_FormattableViaArg(t *testing.T) {
	got := Format("point={}", namedPoint{1, 2})
	assert.Equal(t, "point=<1,2>", got)
}

func TestFormat_Deterministic(t *testing.T) {
	tests := []struct {
		fmt  string
		args []any
	}{
		{"no args", nil},
		{"{}-{}-{}", []any{1, "two", uint32(3)}},
	}
	for _, tt := range tests {
		got := Format(tt.fmt, tt.args...)
		got2 := Format(tt.fmt, tt.args...)
		assert.Equal(t, got, got2, "formatting the same inputs twice should be deterministic")
	}
}

func TestFormat_SmallBufferPromotionDuringFormat(t *testing.T) {
	buf := NewSmallBuffer(4)
	FormatInto(buf, "{}", "this is definitely longer than four bytes")
	assert.Equal(t, "this is definitely longer than four bytes", buf.String())
}

func TestFormat_MoveSemanticsSurviveFormatting(t *testing.T) {
	src := NewSmallBuffer(4)
	FormatInto(src, "{}-{}", "abcdefgh", "ijklmnop")

	dst := NewSmallBuffer(4)
	dst.MoveFrom(src)

	assert.Equal(t, "abcdefgh-ijklmnop", dst.String())
	assert.Equal(t, 0, src.Len())
}

func TestFormat_DigitCountConsistencyAcrossBases(t *testing.T) {
	for _, base := range []int{2, 8, 10, 16, 32} {
		buf := NewSmallBuffer(0)
		WriteDigits(buf, 123456, base, false)
		assert.Equal(t, CountDigits(123456, base), buf.Len())
	}
}
