package slimfmt

// ValueKind tags the variant carried by an ArgValue (spec.md §3).
type ValueKind int

const (
	KindChar ValueKind = iota
	KindI32
	KindU32
	KindI64
	KindU64
	KindPtr
	KindCStr
	KindOwnedStr
	KindStrView
	KindGeneric
)

// typeNames mirrors spec.md §4.B's type_name() diagnostic strings.
var typeNames = map[ValueKind]string{
	KindChar:     "Char",
	KindI32:      "Signed",
	KindU32:      "Unsigned",
	KindI64:      "SignedLL",
	KindU64:      "UnsignedLL",
	KindPtr:      "Ptr",
	KindCStr:     "CString",
	KindOwnedStr: "StdString",
	KindStrView:  "StringView",
	KindGeneric:  "Generic",
}

// ArgValue is a tagged union over the scalar/string/pointer/user
// categories a format call can receive (spec.md §3/§4.B). String and
// pointer variants are non-owning: the referent must outlive the
// format call that receives the ArgValue.
type ArgValue struct {
	kind ValueKind

	ch  byte
	i64 int64
	u64 uint64
	ptr uintptr

	str    string // backs CStr/OwnedStr/StrView
	cstrNU bool   // true when a CStr's pointer is null

	gen genericArg
}

// TypeName returns the fixed diagnostic name for the value's kind.
func (v ArgValue) TypeName() string { return typeNames[v.kind] }

// Kind exposes the underlying tag, mostly useful to the formatter
// engine's dispatch and to tests.
func (v ArgValue) Kind() ValueKind { return v.kind }

// Char constructs a Char-tagged value.
func Char(c byte) ArgValue { return ArgValue{kind: KindChar, ch: c} }

// I32 constructs a 32-bit signed value.
func I32(v int32) ArgValue { return ArgValue{kind: KindI32, i64: int64(v)} }

// U32 constructs a 32-bit unsigned value.
func U32(v uint32) ArgValue { return ArgValue{kind: KindU32, u64: uint64(v)} }

// I64 constructs a 64-bit signed value.
func I64(v int64) ArgValue { return ArgValue{kind: KindI64, i64: v} }

// U64 constructs a 64-bit unsigned value.
func U64(v uint64) ArgValue { return ArgValue{kind: KindU64, u64: v} }

// Ptr constructs a pointer value from its numeric address.
func Ptr(addr uintptr) ArgValue { return ArgValue{kind: KindPtr, ptr: addr} }

// CStr constructs a C-style string value: s is the string content
// (the NUL is implicit), null reports whether the pointer itself is
// null (as opposed to an empty string).
func CStr(s string, null bool) ArgValue {
	return ArgValue{kind: KindCStr, str: s, cstrNU: null}
}

// OwnedStr constructs a value over an owned string's contents.
func OwnedStr(s string) ArgValue { return ArgValue{kind: KindOwnedStr, str: s} }

// StrView constructs a value over a borrowed string view. A plain Go
// string, being itself a non-owning read-only view, maps here by
// default via Arg.
func StrView(s string) ArgValue { return ArgValue{kind: KindStrView, str: s} }

// ---- Predicates (spec.md §4.B) ----

// IsSignedInt reports whether v is a signed integer; with permissive,
// Char also counts.
func (v ArgValue) IsSignedInt(permissive bool) bool {
	switch v.kind {
	case KindI32, KindI64:
		return true
	case KindChar:
		return permissive
	}
	return false
}

// IsUnsignedInt reports whether v is an unsigned integer; with
// permissive, Char also counts.
func (v ArgValue) IsUnsignedInt(permissive bool) bool {
	switch v.kind {
	case KindU32, KindU64:
		return true
	case KindChar:
		return permissive
	}
	return false
}

// IsInt is the union of IsSignedInt and IsUnsignedInt.
func (v ArgValue) IsInt(permissive bool) bool {
	return v.IsSignedInt(permissive) || v.IsUnsignedInt(permissive)
}

// IsChar reports whether v is a Char; with permissive, any string
// variant also counts (treated as its first byte).
func (v ArgValue) IsChar(permissive bool) bool {
	if v.kind == KindChar {
		return true
	}
	return permissive && v.isStringKind()
}

// IsStr reports whether v is a string variant; with permissive, Char
// also counts (treated as a length-1 string).
func (v ArgValue) IsStr(permissive bool) bool {
	if v.isStringKind() {
		return true
	}
	return permissive && v.kind == KindChar
}

// IsPtr reports whether v is a pointer; with permissive, CStr also
// counts.
func (v ArgValue) IsPtr(permissive bool) bool {
	if v.kind == KindPtr {
		return true
	}
	return permissive && v.kind == KindCStr
}

// IsGeneric reports whether v carries a user-defined formatting
// callback.
func (v ArgValue) IsGeneric() bool { return v.kind == KindGeneric }

func (v ArgValue) isStringKind() bool {
	switch v.kind {
	case KindCStr, KindOwnedStr, KindStrView:
		return true
	}
	return false
}

// ---- Extractors (spec.md §4.B) ----

// AsI64 widens signed variants, reinterprets unsigned variants via
// two's-complement cast, and (permissive) contributes a Char's byte
// value. Returns 0 on category mismatch; call sites must guard with
// IsSignedInt/IsInt.
func (v ArgValue) AsI64(permissive bool) int64 {
	switch v.kind {
	case KindI32, KindI64:
		return v.i64
	case KindU32, KindU64:
		return int64(v.u64)
	case KindChar:
		if permissive {
			return int64(v.ch)
		}
	}
	return 0
}

// AsU64 widens unsigned variants, reinterprets signed variants as
// u64, and (permissive) contributes a Char's byte value. Returns 0 on
// category mismatch.
func (v ArgValue) AsU64(permissive bool) uint64 {
	switch v.kind {
	case KindU32, KindU64:
		return v.u64
	case KindI32, KindI64:
		return uint64(v.i64)
	case KindChar:
		if permissive {
			return uint64(v.ch)
		}
	}
	return 0
}

// AsChar returns v's byte for Char; for string variants (permissive),
// the first byte or ' ' if empty; for a null CStr, ' '. Otherwise '\0'.
func (v ArgValue) AsChar(permissive bool) byte {
	switch v.kind {
	case KindChar:
		return v.ch
	case KindCStr, KindOwnedStr, KindStrView:
		if !permissive {
			return 0
		}
		if v.kind == KindCStr && v.cstrNU {
			return ' '
		}
		if len(v.str) == 0 {
			return ' '
		}
		return v.str[0]
	}
	return 0
}

// AsStr returns the string content of a string variant, or (with
// permissive) a length-1 view over a Char's byte. Returns "" on
// category mismatch.
func (v ArgValue) AsStr(permissive bool) string {
	switch v.kind {
	case KindCStr:
		if v.cstrNU {
			return ""
		}
		return v.str
	case KindOwnedStr, KindStrView:
		return v.str
	case KindChar:
		if permissive {
			return string(v.ch)
		}
	}
	return ""
}

// AsPtr returns the numeric address for Ptr, or (permissive) the
// string's length as an opaque stand-in address for CStr; the CStr's
// real data address is not returned. Returns 0 on category mismatch
// or null CStr.
func (v ArgValue) AsPtr(permissive bool) uintptr {
	switch v.kind {
	case KindPtr:
		return v.ptr
	case KindCStr:
		if !permissive || v.cstrNU {
			return 0
		}
		return uintptr(len(v.str)) // opaque stand-in address, not the string's real address
	}
	return 0
}

// AsGeneric returns the stored callback, or the zero value (ok=false)
// if v is not Generic.
func (v ArgValue) AsGeneric() (genericArg, bool) {
	if v.kind != KindGeneric {
		return genericArg{}, false
	}
	return v.gen, true
}
