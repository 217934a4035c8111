package mulprec

import "fmt"

// Integer describes the fixed width integer types of this package to
// generic code: width and signedness, the bounds, limb array round trips
// through a promoted uint64 representation, and the handful of operations
// the decimal formatter and parser lean on. Implementations are zero size
// and are passed by value.
type Integer[V any] interface {
	// Width returns the number of bits in V.
	Width() int

	// Signed reports whether V reads its pattern as two's complement.
	Signed() bool

	Min() V
	Max() V

	// Parts expands the limb array of v into uint64 limbs, least
	// significant limb first.
	Parts(v V) []uint64

	// FromParts builds a V from uint64 limbs, least significant limb
	// first, truncating or extending the bit string to fit. Extension
	// follows the top bit of the input when V is signed, zero fills
	// otherwise.
	FromParts(parts []uint64) V

	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V

	// QuoRem truncates the quotient towards zero; the remainder takes the
	// sign of a. QuoRem panics if b is zero.
	QuoRem(a, b V) (q, r V)

	Cmp(a, b V) int

	// MsbPos returns the index of the most significant set bit of the
	// pattern of v, or -1 for zero. For signed V a negative value always
	// answers with the sign bit.
	MsbPos(v V) int
}

// Uint128Traits adapts Uint128 to the Integer interface.
type Uint128Traits struct{}

func (Uint128Traits) Width() int   { return 128 }
func (Uint128Traits) Signed() bool { return false }
func (Uint128Traits) Min() Uint128 { return Uint128{} }
func (Uint128Traits) Max() Uint128 { return MaxUint128 }

func (Uint128Traits) Parts(v Uint128) []uint64 {
	return []uint64{v.parts[0], v.parts[1]}
}

func (Uint128Traits) FromParts(parts []uint64) (v Uint128) {
	copyBits(v.parts[:], parts, false)
	return v
}

func (Uint128Traits) Add(a, b Uint128) Uint128 { return a.Add(b) }
func (Uint128Traits) Sub(a, b Uint128) Uint128 { return a.Sub(b) }
func (Uint128Traits) Mul(a, b Uint128) Uint128 { return a.Mul(b) }

func (Uint128Traits) QuoRem(a, b Uint128) (Uint128, Uint128) {
	return a.QuoRem(b)
}

func (Uint128Traits) Cmp(a, b Uint128) int { return a.Cmp(b) }
func (Uint128Traits) MsbPos(v Uint128) int { return v.MsbPos() }

// Int128Traits adapts Int128 to the Integer interface.
type Int128Traits struct{}

func (Int128Traits) Width() int   { return 128 }
func (Int128Traits) Signed() bool { return true }
func (Int128Traits) Min() Int128  { return MinInt128 }
func (Int128Traits) Max() Int128  { return MaxInt128 }

func (Int128Traits) Parts(v Int128) []uint64 {
	return []uint64{v.parts[0], v.parts[1]}
}

func (Int128Traits) FromParts(parts []uint64) (v Int128) {
	copyBits(v.parts[:], parts, true)
	return v
}

func (Int128Traits) Add(a, b Int128) Int128 { return a.Add(b) }
func (Int128Traits) Sub(a, b Int128) Int128 { return a.Sub(b) }
func (Int128Traits) Mul(a, b Int128) Int128 { return a.Mul(b) }

func (Int128Traits) QuoRem(a, b Int128) (Int128, Int128) {
	return a.QuoRem(b)
}

func (Int128Traits) Cmp(a, b Int128) int { return a.Cmp(b) }
func (Int128Traits) MsbPos(v Int128) int { return v.MsbPos() }

// Uint256Traits adapts Uint256 to the Integer interface.
type Uint256Traits struct{}

func (Uint256Traits) Width() int   { return 256 }
func (Uint256Traits) Signed() bool { return false }
func (Uint256Traits) Min() Uint256 { return Uint256{} }
func (Uint256Traits) Max() Uint256 { return MaxUint256 }

func (Uint256Traits) Parts(v Uint256) []uint64 {
	return []uint64{v.parts[0], v.parts[1], v.parts[2], v.parts[3]}
}

func (Uint256Traits) FromParts(parts []uint64) (v Uint256) {
	copyBits(v.parts[:], parts, false)
	return v
}

func (Uint256Traits) Add(a, b Uint256) Uint256 { return a.Add(b) }
func (Uint256Traits) Sub(a, b Uint256) Uint256 { return a.Sub(b) }
func (Uint256Traits) Mul(a, b Uint256) Uint256 { return a.Mul(b) }

func (Uint256Traits) QuoRem(a, b Uint256) (Uint256, Uint256) {
	return a.QuoRem(b)
}

func (Uint256Traits) Cmp(a, b Uint256) int { return a.Cmp(b) }
func (Uint256Traits) MsbPos(v Uint256) int { return v.MsbPos() }

var (
	_ Integer[Uint128] = Uint128Traits{}
	_ Integer[Int128]  = Int128Traits{}
	_ Integer[Uint256] = Uint256Traits{}
)

// FormatInt renders v in decimal without the big.Int round trip.
func FormatInt[V any](tr Integer[V], v V) string {
	return string(AppendInt(tr, nil, v))
}

// AppendInt appends the decimal representation of v to dst and returns the
// extended buffer.
func AppendInt[V any](tr Integer[V], dst []byte, v V) []byte {
	if tr.MsbPos(v) < 0 {
		return append(dst, '0')
	}

	neg := tr.Signed() && tr.MsbPos(v) == tr.Width()-1
	ten := tr.FromParts([]uint64{10})

	// Digits come out least significant first. An n bit value has at most
	// a shade over n*0.301 decimal digits, so n/3 plus slack covers the
	// scratch without a second allocation.
	digits := make([]byte, 0, tr.Width()/3+2)

	for tr.MsbPos(v) >= 0 {
		q, r := tr.QuoRem(v, ten)
		p := tr.Parts(r)[0]
		if neg {
			// The remainder tracks the sign of the dividend, so the digit
			// value is the low limb negated. Working the negative side
			// means MinInt128 never has to materialize its magnitude.
			p = -p
		}
		digits = append(digits, byte('0'+p))
		v = q
	}

	if neg {
		dst = append(dst, '-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, digits[i])
	}
	return dst
}

// ParseInt parses a decimal string into a V. A leading '+' or '-' is
// accepted; '-' on an unsigned V clamps to zero unless the magnitude is
// zero. Values outside the bounds of V clamp to Min or Max and set
// accurate to 'false'. The empty string and any non digit character fail
// with an error.
func ParseInt[V any](tr Integer[V], s string) (out V, accurate bool, err error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return out, false, fmt.Errorf("mulprec: invalid integer %q", orig)
	}

	accurate = true

	if neg && !tr.Signed() {
		// Min of an unsigned V is zero, so the only accurate negative
		// string is a zero magnitude.
		for j := 0; j < len(s); j++ {
			if s[j] < '0' || s[j] > '9' {
				return out, false, fmt.Errorf("mulprec: invalid integer %q", orig)
			}
			if s[j] != '0' {
				accurate = false
			}
		}
		return out, accurate, nil
	}

	var zero V
	dir := 1
	bound := tr.Max()
	if neg {
		dir = -1
		bound = tr.Min()
	}

	ten := tr.FromParts([]uint64{10})

	// The bound splits as qb*10+rb with the remainder on the same side of
	// zero as the bound, giving an exact pre-shift overflow test.
	qb, rb := tr.QuoRem(bound, ten)

	for j := 0; j < len(s); j++ {
		c := s[j]
		if c < '0' || c > '9' {
			return out, false, fmt.Errorf("mulprec: invalid integer %q", orig)
		}
		if !accurate {
			// Already clamped; the rest of the scan only validates.
			continue
		}

		dv := tr.FromParts([]uint64{uint64(c - '0')})
		if neg {
			dv = tr.Sub(zero, dv)
		}

		cq := tr.Cmp(out, qb)
		if cq*dir > 0 || (cq == 0 && tr.Cmp(dv, rb)*dir > 0) {
			accurate = false
			continue
		}
		out = tr.Add(tr.Mul(out, ten), dv)
	}

	if !accurate {
		out = bound
	}
	return out, accurate, nil
}
