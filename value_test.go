package slimfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgValue_TypeName(t *testing.T) {
	tests := []struct {
		name     string
		value    ArgValue
		expected string
	}{
		{"char", Char('a'), "Char"},
		{"i32", I32(1), "Signed"},
		{"u32", U32(1), "Unsigned"},
		{"i64", I64(1), "SignedLL"},
		{"u64", U64(1), "UnsignedLL"},
		{"ptr", Ptr(0x10), "Ptr"},
		{"cstr", CStr("x", false), "CString"},
		{"owned", OwnedStr("x"), "StdString"},
		{"view", StrView("x"), "StringView"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.TypeName())
		})
	}
}

func TestArgValue_SignedUnsignedPredicates(t *testing.T) {
	assert.True(t, I32(1).IsSignedInt(false))
	assert.False(t, I32(1).IsUnsignedInt(false))
	assert.True(t, U64(1).IsUnsignedInt(false))
	assert.False(t, U64(1).IsSignedInt(false))

	assert.False(t, Char('a').IsSignedInt(false))
	assert.True(t, Char('a').IsSignedInt(true))
	assert.True(t, Char('a').IsInt(true))
}

func TestArgValue_StrCharPermissiveCoercion(t *testing.T) {
	v := OwnedStr("hello")
	assert.False(t, v.IsChar(false))
	assert.True(t, v.IsChar(true))
	assert.Equal(t, byte('h'), v.AsChar(true))

	c := Char('Q')
	assert.False(t, c.IsStr(false))
	assert.True(t, c.IsStr(true))
	assert.Equal(t, "Q", c.AsStr(true))
}

func TestArgValue_CStrNullPointer(t *testing.T) {
	null := CStr("", true)
	assert.Equal(t, "", null.AsStr(false))
	assert.Equal(t, byte(' '), null.AsChar(true))
	assert.Equal(t, uintptr(0), null.AsPtr(true))
}

func TestArgValue_PtrPermissiveFromCStr(t *testing.T) {
	s := CStr("abcd", false)
	assert.True(t, s.IsPtr(true))
	assert.False(t, s.IsPtr(false))
	assert.Equal(t, uintptr(4), s.AsPtr(true))
}

func TestArgValue_AsI64AsU64Widening(t *testing.T) {
	assert.Equal(t, int64(-1), I32(-1).AsI64(false))
	assert.Equal(t, uint64(1), U32(1).AsU64(false))
	// reinterpretation across signedness, not value preservation
	assert.Equal(t, int64(1), U64(1).AsI64(false))
	assert.Equal(t, uint64(1), I64(1).AsU64(false))
}

func TestArgValue_GenericRoundTrip(t *testing.T) {
	called := false
	v := NewGeneric(func(h *Handle) { called = true; h.WriteString("x") })
	assert.True(t, v.IsGeneric())
	gen, ok := v.AsGeneric()
	assert.True(t, ok)

	buf := NewSmallBuffer(8)
	gen.call(&Handle{buf: buf})
	assert.True(t, called)
	assert.Equal(t, "x", buf.String())
}
