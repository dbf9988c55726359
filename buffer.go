package slimfmt

// defaultInlineCap is used by NewSmallBuffer's fallback for a
// non-positive capacity so the backing array can never be empty. Such
// a request gets this full capacity, not a capacity of 1.
const defaultInlineCap = 64

// SmallBuffer is an append-only byte store backed by a fixed-size
// inline array until growth forces a heap allocation. It is the
// single output sink every writer in this package funnels into.
//
// A SmallBuffer is not safe for concurrent use; a format call takes
// an exclusive mutable borrow of it for its whole duration.
type SmallBuffer struct {
	inline []byte // fixed-capacity backing array, len==cap(inline)
	heap   []byte // non-nil once promoted; data == heap
	data   []byte // the currently active backing slice (alias of inline or heap)
	len    int
}

// NewSmallBuffer constructs an empty buffer with the given inline
// capacity. A non-positive capacity is promoted to defaultInlineCap.
func NewSmallBuffer(inlineCap int) *SmallBuffer {
	if inlineCap <= 0 {
		inlineCap = defaultInlineCap
	}
	b := &SmallBuffer{inline: make([]byte, inlineCap)}
	b.data = b.inline
	return b
}

// isInline reports whether the buffer is currently backed by its
// inline array: true until Reserve or MoveFrom installs a heap block,
// determined by whether the heap slice is nil.
func (b *SmallBuffer) isInline() bool {
	return b.heap == nil
}

// Len returns the number of bytes currently stored.
func (b *SmallBuffer) Len() int { return b.len }

// Cap returns the capacity of the active backing array.
func (b *SmallBuffer) Cap() int { return len(b.data) }

// Bytes returns the stored bytes as a slice aliasing the buffer's
// internal storage. The slice is only valid until the next mutating
// call.
func (b *SmallBuffer) Bytes() []byte { return b.data[:b.len] }

// String copies the stored bytes into a fresh string.
func (b *SmallBuffer) String() string { return string(b.data[:b.len]) }

// Reserve ensures the active backing array can hold at least cap
// bytes total, growing (and promoting to heap) as needed per the
// policy in spec.md §3: newCap = max(cap, 2*oldCap).
func (b *SmallBuffer) Reserve(cap int) {
	if cap <= len(b.data) {
		return
	}
	newCap := cap
	if grown := len(b.data) * 2; grown > newCap {
		newCap = grown
	}
	newData := make([]byte, newCap)
	copy(newData, b.data[:b.len])
	b.heap = newData
	b.data = newData
}

// Push appends a single byte, growing as needed.
func (b *SmallBuffer) Push(c byte) {
	b.Reserve(b.len + 1)
	b.data[b.len] = c
	b.len++
}

// Append appends the given bytes, growing as needed.
func (b *SmallBuffer) Append(bs []byte) {
	if len(bs) == 0 {
		return
	}
	b.Reserve(b.len + len(bs))
	copy(b.data[b.len:], bs)
	b.len += len(bs)
}

// AppendString appends the given string without an intermediate
// []byte copy beyond the unavoidable one.
func (b *SmallBuffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	b.Reserve(b.len + len(s))
	copy(b.data[b.len:], s)
	b.len += len(s)
}

// Fill appends count copies of c. Equivalent to Resize(Len()+count, c).
func (b *SmallBuffer) Fill(count int, c byte) {
	if count <= 0 {
		return
	}
	b.Reserve(b.len + count)
	for i := 0; i < count; i++ {
		b.data[b.len+i] = c
	}
	b.len += count
}

// Resize sets the length to n. If n is larger than the current
// length, the new tail bytes are set to fill; if smaller, the tail is
// dropped. Capacity grows as needed.
func (b *SmallBuffer) Resize(n int, fill byte) {
	if n < 0 {
		n = 0
	}
	if n <= b.len {
		b.len = n
		return
	}
	b.Reserve(n)
	for i := b.len; i < n; i++ {
		b.data[i] = fill
	}
	b.len = n
}

// Wipe drops any heap block and restores the inline backing, with
// length reset to 0.
func (b *SmallBuffer) Wipe() {
	b.heap = nil
	b.data = b.inline
	b.len = 0
}

// MoveFrom transfers the contents of src into b: if src is
// heap-backed, b takes ownership of the heap block (no copy);
// otherwise the inline bytes are copied into b's own inline storage.
// src is reset to length 0 afterward. Moving a buffer into itself is
// a no-op.
func (b *SmallBuffer) MoveFrom(src *SmallBuffer) {
	if b == src {
		return
	}
	if !src.isInline() {
		b.heap = src.heap
		b.data = src.data
		b.len = src.len
	} else {
		if cap(b.inline) < src.len {
			b.inline = make([]byte, src.len)
		}
		copy(b.inline, src.data[:src.len])
		b.heap = nil
		b.data = b.inline
		b.len = src.len
	}
	src.heap = nil
	src.data = src.inline
	src.len = 0
}
