package slimfmt

import "unsafe"

// Arg converts a Go-native value into the tagged ArgValue the
// formatter engine consumes (spec.md §3's "caller constructs...value
// wrappers"). This is the ergonomic entry point most callers use
// instead of the Char/I32/U32/.../OwnedStr constructors directly.
//
// A plain Go string maps to StrView: Go strings are themselves
// non-owning, read-only views over bytes, so there is no distinct
// "owned" representation to pick between the way a C++ caller would
// choose between std::string and string_view.
func Arg(v any) ArgValue {
	switch x := v.(type) {
	case ArgValue:
		return x
	case byte: // byte is an alias for uint8; also covers rune-as-char call sites that pass a single byte
		return Char(x)
	case int:
		return I64(int64(x))
	case int32:
		return I32(x)
	case int64:
		return I64(x)
	case uint:
		return U64(uint64(x))
	case uint32:
		return U32(x)
	case uint64:
		return U64(x)
	case string:
		return StrView(x)
	case unsafe.Pointer:
		return Ptr(uintptr(x))
	case uintptr:
		return Ptr(x)
	case Formattable:
		return NewGeneric(x.FormatTo)
	default:
		return OwnedStr("%!slimfmt(unsupported)")
	}
}

// Args converts a slice of Go-native values into ArgValues in one
// pass; a small convenience for the common `Format(fmt, a, b, c)`
// call shape built on top of variadic `any`.
func Args(vs ...any) []ArgValue {
	out := make([]ArgValue, len(vs))
	for i, v := range vs {
		out[i] = Arg(v)
	}
	return out
}
