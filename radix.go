package slimfmt

// digitsLower and digitsUpper are the base-32 digit alphabets
// (spec.md §4.C): 0-9 then a-v / A-V, 32 symbols total.
const (
	digitsLower = "0123456789abcdefghijklmnopqrstuv"
	digitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

// maxUnaryOnes is the longest run of '1' characters the unary (base 1)
// renderer will emit before switching to an ellipsis (spec.md §4.C).
const maxUnaryOnes = 64

// ValidBase reports whether base falls in the supported 1..32 range.
func ValidBase(base int) bool { return base >= 1 && base <= 32 }

// CountDigits returns the number of characters WriteDigits would emit
// for v in the given base (spec.md §4.C, §8 property 5). base must be
// in 1..32.
func CountDigits(v uint64, base int) int {
	if base == 1 {
		switch {
		case v == 0:
			return 1
		case v <= maxUnaryOnes:
			return int(v)
		default:
			return maxUnaryOnes + 3 // 64 ones + "..."
		}
	}
	if v == 0 {
		return 1
	}
	b := uint64(base)
	n := 0
	for v > 0 {
		v /= b
		n++
	}
	return n
}

// WriteDigits emits the base-`base` representation of v into buf. For
// base 1 (unary), v is rendered as up to 64 '1' characters followed
// by "..." if v exceeds 64; v==0 emits '0'. For other bases, digits
// are taken from the lower/upper alphabet per upper. base must be in
// 1..32.
func WriteDigits(buf *SmallBuffer, v uint64, base int, upper bool) {
	if base == 1 {
		writeUnary(buf, v)
		return
	}
	if v == 0 {
		buf.Push('0')
		return
	}

	alphabet := digitsLower
	if upper {
		alphabet = digitsUpper
	}

	var scratch [64]byte
	i := len(scratch)
	b := uint64(base)
	for v > 0 {
		i--
		scratch[i] = alphabet[v%b]
		v /= b
	}
	buf.Append(scratch[i:])
}

func writeUnary(buf *SmallBuffer, v uint64) {
	if v == 0 {
		buf.Push('0')
		return
	}
	n := v
	if n > maxUnaryOnes {
		n = maxUnaryOnes
	}
	buf.Fill(int(n), '1')
	if v > maxUnaryOnes {
		buf.AppendString("...")
	}
}
