package slimfmt

// Formattable is the user-defined-type extension hook spec.md §6
// describes as "a free function whose signature matches (formatter
// handle, &value) → ()". In Go the natural closed extension point is
// a method: any type implementing Formattable can be wrapped into a
// Generic ArgValue by Arg.
type Formattable interface {
	FormatTo(h *Handle)
}

// genericArg is the payload of a Generic ArgValue: a closure bound
// over whatever data the caller's Formattable captured. The engine
// never inspects the data itself, only invokes the closure with a
// Handle (spec.md §4.B: "Generic carries a pair (opaque data pointer,
// format callback pointer)").
type genericArg struct {
	call func(h *Handle)
}

// NewGeneric constructs a Generic ArgValue from a raw callback. Most
// callers should instead implement Formattable and pass the value to
// Arg, which calls this for them.
func NewGeneric(fn func(h *Handle)) ArgValue {
	return ArgValue{kind: KindGeneric, gen: genericArg{call: fn}}
}

// Handle is the formatter handle passed to a Generic argument's
// callback (spec.md §6). It exposes just enough of the formatter's
// state for a user-defined type to write itself out, without handing
// over the buffer or the remaining format string directly.
type Handle struct {
	buf *SmallBuffer
}

// WriteByte appends a single byte.
func (h *Handle) WriteByte(c byte) { h.buf.Push(c) }

// WriteString appends a string.
func (h *Handle) WriteString(s string) { h.buf.AppendString(s) }

// WriteBytes appends a byte slice.
func (h *Handle) WriteBytes(bs []byte) { h.buf.Append(bs) }

// WriteInt appends the base-10 rendering of a signed integer,
// reusing the same radix renderer every other integer field uses.
func (h *Handle) WriteInt(v int64) {
	if v < 0 {
		h.buf.Push('-')
		WriteDigits(h.buf, uint64(-v), 10, false)
		return
	}
	WriteDigits(h.buf, uint64(v), 10, false)
}

// ReserveBack ensures the underlying buffer has room for n more
// bytes, so a callback that knows its own output size up front can
// avoid incremental regrowth.
func (h *Handle) ReserveBack(n int) { h.buf.Reserve(h.buf.Len() + n) }
