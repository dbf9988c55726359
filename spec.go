package slimfmt

import "strconv"

// FieldKind tags what a parsed replacement field turned out to be
// (spec.md §3's "Replacement descriptor").
type FieldKind int

const (
	FieldEmpty FieldKind = iota
	FieldLiteral
	FieldFormat
)

// Side selects how padding is distributed around a field's value
// (spec.md §4.D).
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideCenter
)

// Extra carries the field-level modifier parsed from the options
// part (spec.md §4.D's `extra` grammar rule).
type Extra int

const (
	ExtraNone Extra = iota
	ExtraUppercase
	ExtraChar
	ExtraPtr
)

// Width sentinels for ReplacementSpec.Width.
const (
	WidthNone    = 0
	WidthDynamic = -1
)

// BaseInvalid marks a ReplacementSpec whose base could not be
// resolved (spec.md §4.C: "base = Invalid causes the engine to emit
// only padding").
const BaseInvalid = -1

// BaseDefault is the base used by a field with no options part.
const BaseDefault = 10

// ReplacementSpec is the parsed form of one `{...}` field (spec.md
// §3). Literal carries the verbatim bytes to copy when Kind is
// FieldLiteral; the remaining fields only matter when Kind is
// FieldFormat.
type ReplacementSpec struct {
	Kind    FieldKind
	Literal string
	Base    int
	Extra   Extra
	Side    Side
	Width   int // WidthNone, WidthDynamic, or an explicit positive width
	Pad     byte
}

func emptyField() ReplacementSpec {
	return ReplacementSpec{Kind: FieldEmpty}
}

func defaultFormatField() ReplacementSpec {
	return ReplacementSpec{
		Kind: FieldFormat,
		Base: BaseDefault,
		Side: SideLeft,
		Pad:  ' ',
	}
}

func isPrintableASCII(c byte) bool { return c >= 0x20 && c <= 0x7E }

// parseReplacementSpec parses the bytes between `{` and `}` (raw,
// excluding the braces) per the grammar in spec.md §4.D. pos is the
// byte offset of raw's first byte within the overall format string,
// used only to tag diagnostics. On syntax errors the returned spec
// has Kind FieldEmpty (the field is dropped) and diag is non-nil; on
// an out-of-range radix the returned spec keeps Kind FieldFormat with
// Base set to BaseInvalid (spec.md §4.C dispatch handles this at
// write time), and diag reports BadBase.
func parseReplacementSpec(raw string, pos int) (ReplacementSpec, *Diagnostic) {
	if raw == "" {
		return defaultFormatField(), nil
	}

	spec := defaultFormatField()
	i := 0
	n := len(raw)
	var padDiag *Diagnostic

	if raw[0] == ':' {
		if n < 2 {
			d := newDiag(BadSpec, pos, "alignment part requires a pad character")
			return emptyField(), &d
		}
		i = 1

		pad := raw[i]
		if !isPrintableASCII(pad) {
			pad = ' '
			d := newDiag(BadSpec, pos+i, "pad character %q is not printable ASCII, using ' '", raw[i])
			padDiag = &d
		}
		spec.Pad = pad
		i++

		if i < n {
			switch raw[i] {
			case '<', '+':
				spec.Side = SideLeft
				i++
			case '>', '-':
				spec.Side = SideRight
				i++
			case ' ', '=':
				spec.Side = SideCenter
				i++
			}
		}

		switch {
		case i < n && raw[i] == '*':
			spec.Width = WidthDynamic
			i++
		default:
			start := i
			for i < n && raw[i] >= '0' && raw[i] <= '9' {
				i++
			}
			if i > start {
				val, err := strconv.Atoi(raw[start:i])
				if err != nil || val > 1<<20 {
					d := newDiag(BadSpec, pos+start, "width %q overflows", raw[start:i])
					return emptyField(), &d
				}
				spec.Width = val
			}
		}
	}

	if i >= n {
		// Pad coercion (if any) is the only thing that could be
		// wrong; the field still parses to completion with no
		// options part.
		return spec, padDiag
	}

	if raw[i] != '%' {
		d := newDiag(BadSpec, pos+i, "expected '%%' but found %q", raw[i])
		return emptyField(), &d
	}
	i++

	base, extra, diag := parseOptions(raw[i:], pos+i)
	if diag != nil && diag.Kind == BadSpec {
		return emptyField(), diag
	}
	spec.Base = base
	spec.Extra = extra
	if diag != nil {
		// BadBase beats a cosmetic pad warning: it is the one that
		// changes write-time behavior.
		if VerboseAssert() {
			diag.Detail = DumpSpec(spec)
		}
		return spec, diag
	}
	return spec, padDiag
}

// parseOptions parses the options part (everything after '%', tail
// not including '%') per spec.md §4.D.
func parseOptions(tail string, pos int) (base int, extra Extra, diag *Diagnostic) {
	if tail == "" {
		d := newDiag(BadSpec, pos, "empty options after '%%'")
		return BaseInvalid, ExtraNone, &d
	}

	extra = ExtraNone
	head := tail
	switch tail[len(tail)-1] {
	case 'p', 'P':
		extra = ExtraPtr
		head = tail[:len(tail)-1]
	case 'c', 'C':
		extra = ExtraChar
		head = tail[:len(tail)-1]
	}

	if extra == ExtraPtr {
		// p/P forces hex regardless of whatever base letter preceded
		// it; the head (if any) is vestigial once that's true.
		return 16, ExtraPtr, nil
	}

	if head == "" {
		d := newDiag(BadSpec, pos, "missing base before extra")
		return BaseInvalid, extra, &d
	}

	base, upper, status := parseHeadBase(head)
	switch status {
	case headBadSpec:
		d := newDiag(BadSpec, pos, "unrecognized base %q", head)
		return BaseInvalid, extra, &d
	case headBadBase:
		if extra == ExtraNone && upper {
			extra = ExtraUppercase
		}
		d := newDiag(BadBase, pos, "base %q outside 1..32", head)
		return BaseInvalid, extra, &d
	default:
		if extra == ExtraNone && upper {
			extra = ExtraUppercase
		}
		return base, extra, nil
	}
}

const (
	headOK = iota
	headBadSpec
	headBadBase
)

// parseHeadBase parses an alpha_base or radix_base token (spec.md
// §4.D grammar) and reports whether an uppercase spelling was used.
func parseHeadBase(head string) (base int, upper bool, status int) {
	if len(head) == 1 {
		switch head[0] {
		case 'b', 'B':
			return 2, false, headOK
		case 'o', 'O':
			return 8, false, headOK
		case 'd', 'D':
			return 10, false, headOK
		case 'x':
			return 16, false, headOK
		case 'X':
			return 16, true, headOK
		case 'h':
			return 16, false, headOK
		case 'H':
			return 16, true, headOK
		}
	}

	if len(head) >= 2 && (head[0] == 'r' || head[0] == 'R') {
		digits := head[1:]
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				return 0, false, headBadSpec
			}
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0, false, headBadSpec
		}
		upper = head[0] == 'R'
		if !ValidBase(n) {
			return 0, upper, headBadBase
		}
		return n, upper, headOK
	}

	return 0, false, headBadSpec
}
