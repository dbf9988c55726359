package slimfmt

import "strings"

// nextSegment advances sc past one tokenizer segment and returns its
// parsed ReplacementSpec (spec.md §4.D "Tokenization"): a literal run
// (Kind FieldLiteral), a parsed field (Kind FieldFormat or FieldEmpty
// on a dropped/malformed spec), or — when done is true — the end of
// input (possibly because of an unterminated '{', signaled via a
// TruncatedField diagnostic).
func nextSegment(sc *scanner) (spec ReplacementSpec, diag *Diagnostic, fieldPos int, done bool) {
	if sc.eof() {
		return ReplacementSpec{}, nil, sc.pos, true
	}

	if sc.peek() != '{' {
		start := sc.pos
		for !sc.eof() && sc.peek() != '{' {
			sc.advance()
		}
		return ReplacementSpec{Kind: FieldLiteral, Literal: sc.s[start:sc.pos]}, nil, start, false
	}

	braceStart := sc.pos
	for !sc.eof() && sc.peek() == '{' {
		sc.advance()
	}
	run := sc.pos - braceStart

	if run > 1 {
		consumed := run - (run % 2)
		leftover := run - consumed
		sc.pos -= leftover // an odd trailing '{' starts a real field next call
		return ReplacementSpec{Kind: FieldLiteral, Literal: strings.Repeat("{", consumed/2)}, nil, braceStart, false
	}

	// A single '{': find its matching '}', recovering into a literal
	// if another '{' shows up first.
	closeIdx := sc.indexFrom('}')
	nextOpenIdx := sc.indexFrom('{')

	if closeIdx == -1 {
		d := newDiag(TruncatedField, braceStart, "unterminated '{'")
		return ReplacementSpec{Kind: FieldEmpty}, &d, braceStart, true
	}
	if nextOpenIdx != -1 && nextOpenIdx < closeIdx {
		lit := sc.s[sc.pos:nextOpenIdx]
		sc.pos = nextOpenIdx
		return ReplacementSpec{Kind: FieldLiteral, Literal: lit}, nil, braceStart, false
	}

	raw := sc.s[sc.pos:closeIdx]
	specPos := sc.pos
	sc.pos = closeIdx + 1
	spec, diag = parseReplacementSpec(raw, specPos)
	return spec, diag, braceStart, false
}

// category is the per-field writer category resolved from a
// ReplacementSpec's Extra and an ArgValue's kind (spec.md §4.D
// "Predicted width by category" / "Writers").
type category int

const (
	catSignedInt category = iota
	catUnsignedInt
	catPtr
	catChar
	catString
)

// resolveCategory picks the writer category for arg under spec. The
// c/p extras force Char/Ptr category via permissive predicates
// (Glossary: "permissive coercion... enabled per-field by the c/p
// extras"); otherwise the category follows directly from the
// argument's own kind.
func resolveCategory(spec ReplacementSpec, arg ArgValue, pos int) (category, *Diagnostic) {
	switch spec.Extra {
	case ExtraChar:
		if !arg.IsChar(true) {
			d := newDiag(CategoryMismatch, pos, "expected a char-compatible argument, got %s", arg.TypeName())
			if VerboseAssert() {
				d.Detail = DumpArg(arg)
			}
			return catChar, &d
		}
		return catChar, nil
	case ExtraPtr:
		if !arg.IsPtr(true) {
			d := newDiag(CategoryMismatch, pos, "expected a pointer-compatible argument, got %s", arg.TypeName())
			if VerboseAssert() {
				d.Detail = DumpArg(arg)
			}
			return catPtr, &d
		}
		return catPtr, nil
	}

	switch arg.Kind() {
	case KindI32, KindI64:
		return catSignedInt, nil
	case KindU32, KindU64:
		return catUnsignedInt, nil
	case KindChar:
		return catChar, nil
	case KindPtr:
		return catPtr, nil
	case KindCStr, KindOwnedStr, KindStrView:
		return catString, nil
	default:
		d := newDiag(CategoryMismatch, pos, "unsupported argument kind %s", arg.TypeName())
		if VerboseAssert() {
			d.Detail = DumpArg(arg)
		}
		return catUnsignedInt, &d
	}
}

// absUint64 computes |v| without overflowing on math.MinInt64.
func absUint64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return uint64(-(v + 1)) + 1
}

// predictedWidth implements spec.md §4.D's "Predicted width by
// category" table. base must already be known valid; callers skip
// this entirely when spec.Base is BaseInvalid.
func predictedWidth(spec ReplacementSpec, arg ArgValue, cat category) int {
	switch cat {
	case catSignedInt:
		v := arg.AsI64(false)
		n := CountDigits(absUint64(v), spec.Base)
		if v < 0 {
			n++
		}
		return n
	case catUnsignedInt:
		return CountDigits(arg.AsU64(false), spec.Base)
	case catPtr:
		addr := arg.AsPtr(true)
		return CountDigits(uint64(addr), spec.Base) + 2
	case catChar:
		return 1
	case catString:
		return len(arg.AsStr(true))
	}
	return 0
}

// pointerPrefixByte picks the second prefix byte for a rendered
// pointer (spec.md §9 Open Question: named bases get their own
// letter, arbitrary radices get 'z').
func pointerPrefixByte(base int) byte {
	switch base {
	case 2:
		return 'b'
	case 8:
		return 'o'
	case 10:
		return 'd'
	case 16:
		return 'x'
	default:
		return 'z'
	}
}

// writeValue implements spec.md §4.D's per-category "Writers".
func writeValue(buf *SmallBuffer, spec ReplacementSpec, arg ArgValue, cat category) {
	switch cat {
	case catSignedInt:
		v := arg.AsI64(false)
		if v < 0 {
			buf.Push('-')
		}
		WriteDigits(buf, absUint64(v), spec.Base, spec.Extra == ExtraUppercase)
	case catUnsignedInt:
		WriteDigits(buf, arg.AsU64(false), spec.Base, spec.Extra == ExtraUppercase)
	case catPtr:
		addr := arg.AsPtr(true)
		buf.Push('0')
		buf.Push(pointerPrefixByte(spec.Base))
		WriteDigits(buf, uint64(addr), spec.Base, true) // Ptr extra always renders uppercase
	case catChar:
		buf.Push(arg.AsChar(true))
	case catString:
		buf.AppendString(arg.AsStr(true))
	}
}

// dispatchField implements spec.md §4.D's "Per-field dispatch" and
// "Padding policy" for one FieldFormat descriptor, consuming one or
// two entries from args starting at *argi.
func dispatchField(buf *SmallBuffer, spec ReplacementSpec, args []ArgValue, argi *int, pos int) []Diagnostic {
	var diags []Diagnostic
	width := spec.Width

	if width == WidthDynamic {
		if *argi >= len(args) {
			diags = append(diags, newDiag(ArgUnderflow, pos, "dynamic width field requires an argument"))
			return diags
		}
		wArg := args[*argi]
		*argi++
		switch {
		case !wArg.IsInt(false):
			d := newDiag(CategoryMismatch, pos, "dynamic width argument must be an integer, got %s", wArg.TypeName())
			if VerboseAssert() {
				d.Detail = DumpArg(wArg)
			}
			diags = append(diags, d)
			width = WidthNone
		case wArg.IsSignedInt(false):
			v := wArg.AsI64(false)
			if v < 0 {
				v = 0
			}
			width = int(v)
		default:
			width = int(wArg.AsU64(false))
		}
	}

	if *argi >= len(args) {
		diags = append(diags, newDiag(ArgUnderflow, pos, "field requires an argument"))
		return diags
	}
	arg := args[*argi]
	*argi++

	if arg.IsGeneric() {
		if gen, ok := arg.AsGeneric(); ok {
			gen.call(&Handle{buf: buf})
		}
		return diags
	}

	cat, catDiag := resolveCategory(spec, arg, pos)
	if catDiag != nil {
		diags = append(diags, *catDiag)
	}

	skipValue := spec.Base == BaseInvalid

	length := 0
	if !skipValue {
		length = predictedWidth(spec, arg, cat)
	}

	emit := func() {
		if !skipValue {
			writeValue(buf, spec, arg, cat)
		}
	}

	if width > length {
		fill := width - length
		switch spec.Side {
		case SideLeft:
			emit()
			buf.Fill(fill, spec.Pad)
		case SideRight:
			buf.Fill(fill, spec.Pad)
			emit()
		case SideCenter:
			left := fill / 2
			buf.Fill(left, spec.Pad)
			emit()
			buf.Fill(fill-left, spec.Pad)
		}
	} else {
		emit()
	}

	return diags
}

// formatWith runs the tokenizer/dispatch loop over fmtStr, writing
// into buf and consuming args in order. It returns the number of
// bytes appended to buf and every diagnostic raised along the way
// (spec.md §4.D's state machine and §7's error taxonomy).
func formatWith(buf *SmallBuffer, fmtStr string, args []ArgValue) (int, []Diagnostic) {
	sc := newScanner(fmtStr)
	start := buf.Len()
	argi := 0
	var diags []Diagnostic

loop:
	for {
		spec, diag, fieldPos, done := nextSegment(sc)
		if diag != nil {
			diags = append(diags, *diag)
		}
		if done {
			break loop
		}

		switch spec.Kind {
		case FieldEmpty:
			// dropped, per spec.md §7's BadSpec policy
		case FieldLiteral:
			buf.AppendString(spec.Literal)
		case FieldFormat:
			fdiags := dispatchField(buf, spec, args, &argi, fieldPos)
			diags = append(diags, fdiags...)
			for _, d := range fdiags {
				if d.Kind == ArgUnderflow {
					break loop
				}
			}
		}
	}

	if argi < len(args) {
		diags = append(diags, newDiag(ArgOverflow, len(fmtStr), "%d argument(s) left unconsumed", len(args)-argi))
	}
	return buf.Len() - start, diags
}
