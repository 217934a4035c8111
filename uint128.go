package mulprec

import (
	"fmt"
	"math/big"
	"strconv"
)

// Uint128 is an unsigned integer with 128 bits of precision, stored as an
// array of two 64 bit limbs, least significant limb first.
type Uint128 struct {
	parts [2]uint64
}

// Uint128FromParts constructs a Uint128 directly from its limb array.
func Uint128FromParts(parts [2]uint64) Uint128 { return Uint128{parts: parts} }

// Uint128FromRaw constructs a Uint128 from the high and low halves of the
// bit pattern.
func Uint128FromRaw(hi, lo uint64) Uint128 { return Uint128{parts: [2]uint64{lo, hi}} }

func Uint128From64(v uint64) Uint128 { return Uint128{parts: [2]uint64{v, 0}} }
func Uint128From32(v uint32) Uint128 { return Uint128From64(uint64(v)) }
func Uint128From16(v uint16) Uint128 { return Uint128From64(uint64(v)) }
func Uint128From8(v uint8) Uint128   { return Uint128From64(uint64(v)) }
func Uint128FromUint(v uint) Uint128 { return Uint128From64(uint64(v)) }

// Uint128FromInt creates a Uint128 from an int. Negative values saturate to
// zero and set accurate to 'false'.
func Uint128FromInt(v int) (out Uint128, accurate bool) {
	if v < 0 {
		return out, false
	}
	return Uint128From64(uint64(v)), true
}

// Uint128FromString creates a Uint128 from a string. Overflow truncates to
// MaxUint128 and sets accurate to 'false'. Only decimal strings are
// supported; this deliberately limits the scope of what we accept as input
// so the fast decimal-only parser can stay simple.
func Uint128FromString(s string) (out Uint128, accurate bool, err error) {
	return ParseInt(Uint128Traits{}, s)
}

// Uint128FromBigInt creates a Uint128 from a big.Int. Overflow truncates to
// MaxUint128 and sets accurate to 'false'.
func Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
		case 1:
			out.parts[0] = uint64(words[0])
		case 2:
			out.parts[0] = uint64(words[0])
			out.parts[1] = uint64(words[1])
		default:
			return MaxUint128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
		case 1:
			out.parts[0] = uint64(words[0])
		case 2:
			out.parts[0] = uint64(words[1])<<32 | uint64(words[0])
		case 3:
			out.parts[0] = uint64(words[1])<<32 | uint64(words[0])
			out.parts[1] = uint64(words[2])
		case 4:
			out.parts[0] = uint64(words[1])<<32 | uint64(words[0])
			out.parts[1] = uint64(words[3])<<32 | uint64(words[2])
		default:
			return MaxUint128, false
		}

	default:
		panic("mulprec: unsupported bit size")
	}

	return out, true
}

func Uint128FromFloat32(f float32) (out Uint128, inRange bool) {
	return Uint128FromFloat64(float64(f))
}

// Uint128FromFloat64 creates a Uint128 from a float64. Any fractional
// portion is truncated towards zero. Floats outside the bounds of a Uint128
// are clamped to the min or max value and inRange is set to 'false'.
//
// NaN is treated as 0, inRange is set to 'false'. This may change to a
// panic at some point.
func Uint128FromFloat64(f float64) (out Uint128, inRange bool) {
	if f == 0 {
		return out, true

	} else if f < 0 {
		return out, false

	} else if f < wrapUint64Float {
		out.parts[0] = uint64(f)
		return out, true

	} else if f < wrapUint128Float {
		out.parts[1] = uint64(f / wrapUint64Float)
		out.parts[0] = uint64(modpos(f, wrapUint64Float))
		return out, true

	} else if f != f {
		return out, false

	} else {
		return MaxUint128, false
	}
}

// RandUint128 generates an unsigned 128 bit random integer from an external
// source.
func RandUint128(source RandSource) (out Uint128) {
	return Uint128{parts: [2]uint64{source.Uint64(), source.Uint64()}}
}

// RandUint128n generates an unsigned 128 bit random integer less than n
// from an external source, by rejection from the smallest covering power of
// two.
func RandUint128n(source RandSource, n Uint128) (out Uint128) {
	if n.parts[1] == 0 && n.parts[0] <= 1 {
		return out
	}
	bl := uint(n.Dec().BitLen())
	for {
		out = RandUint128(source).Rsh(128 - bl)
		if out.LessThan(n) {
			return out
		}
	}
}

func (u Uint128) IsZero() bool { return u == zeroUint128 }

// Raw returns the high and low halves of the bit pattern.
func (u Uint128) Raw() (hi, lo uint64) { return u.parts[1], u.parts[0] }

// Parts returns a snapshot of the limb array, least significant limb first.
func (u Uint128) Parts() [2]uint64 { return u.parts }

func (u Uint128) String() string {
	if u.parts[1] == 0 {
		if u.parts[0] == 0 {
			return "0"
		}
		return strconv.FormatUint(u.parts[0], 10)
	}
	return FormatInt(Uint128Traits{}, u)
}

func (u Uint128) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but it's not forever; we need to
	// support the full suite of verbs without the big.Int round trip.
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this value into an existing big.Int, allowing you to
// retain and reuse the allocated storage.
func (u Uint128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if ln < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.parts[0])
		bits[1] = big.Word(u.parts[1])
		b.SetBits(bits)

	default:
		b.SetUint64(u.parts[1])
		b.Lsh(b, 64)
		b.Add(b, new(big.Int).SetUint64(u.parts[0]))
	}
}

// AsBigInt allocates a new big.Int from this value. IntoBigInt allows you to
// recycle the storage instead.
func (u Uint128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

func (u Uint128) AsFloat64() float64 {
	if u.parts[1] == 0 {
		return float64(u.parts[0])
	}
	return float64(u.parts[1])*wrapUint64Float + float64(u.parts[0])
}

// AsInt128 reinterprets the bit pattern as a signed value. Values with the
// top bit set come out negative.
func (u Uint128) AsInt128() Int128 {
	return Int128{parts: u.parts}
}

// IsInt128 reports whether u is representable in an Int128 without wrapping
// to a negative value.
func (u Uint128) IsInt128() bool {
	return isNonnegParts(u.parts[:])
}

// AsUint256 zero extends u to 256 bits.
func (u Uint128) AsUint256() (v Uint256) {
	v.parts[0], v.parts[1] = u.parts[0], u.parts[1]
	return v
}

func (u Uint128) AsUint64() uint64 { return u.parts[0] }
func (u Uint128) IsUint64() bool   { return u.parts[1] == 0 }

func (u Uint128) Inc() (v Uint128) {
	var c uint64
	v.parts[0], c = partialAdd(u.parts[0], 1, 0)
	v.parts[1], _ = partialAdd(u.parts[1], 0, c)
	return v
}

func (u Uint128) Dec() (v Uint128) {
	var c uint64
	v.parts[0], c = partialSub(u.parts[0], 1, 0)
	v.parts[1], _ = partialSub(u.parts[1], 0, c)
	return v
}

// Add returns u + n, wrapping around on overflow.
func (u Uint128) Add(n Uint128) (v Uint128) {
	addParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

// Sub returns u - n, wrapping around on underflow.
func (u Uint128) Sub(n Uint128) (v Uint128) {
	subParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

// Neg returns zero minus u, wrapping around.
func (u Uint128) Neg() (v Uint128) {
	negParts(v.parts[:], u.parts[:])
	return v
}

func (u Uint128) Cmp(n Uint128) int {
	return cmpParts(u.parts[:], n.parts[:])
}

func (u Uint128) Equal(n Uint128) bool            { return u == n }
func (u Uint128) GreaterThan(n Uint128) bool      { return ultParts(n.parts[:], u.parts[:]) }
func (u Uint128) GreaterOrEqualTo(n Uint128) bool { return !ultParts(u.parts[:], n.parts[:]) }
func (u Uint128) LessThan(n Uint128) bool         { return ultParts(u.parts[:], n.parts[:]) }
func (u Uint128) LessOrEqualTo(n Uint128) bool    { return !ultParts(n.parts[:], u.parts[:]) }

func (u Uint128) And(n Uint128) (v Uint128) {
	andParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

func (u Uint128) AndNot(n Uint128) (v Uint128) {
	andNotParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

func (u Uint128) Not() (v Uint128) {
	notParts(v.parts[:], u.parts[:])
	return v
}

func (u Uint128) Or(n Uint128) (v Uint128) {
	orParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

func (u Uint128) Xor(n Uint128) (v Uint128) {
	xorParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

// Bit returns the value of the bit at index i. The index must be in the
// range 0 to 127 inclusive.
func (u Uint128) Bit(i int) uint {
	return uint(u.parts[i/64] >> (uint(i) % 64) & 1)
}

// SetBit returns a copy of u with the bit at index i set to b, which must
// be 0 or 1. The index must be in the range 0 to 127 inclusive.
func (u Uint128) SetBit(i int, b uint) (v Uint128) {
	v = u
	if b == 0 {
		v.parts[i/64] &^= 1 << (uint(i) % 64)
	} else {
		v.parts[i/64] |= 1 << (uint(i) % 64)
	}
	return v
}

// Lsh shifts u left by n bits. The count is reduced modulo 128, so an out
// of range count wraps around instead of clearing the value. Vacated bits
// fill with zero.
func (u Uint128) Lsh(n uint) (v Uint128) {
	shlParts(v.parts[:], u.parts[:], n)
	return v
}

// Rsh shifts u right by n bits, modulo 128. The shift is logical; vacated
// bits fill with zero.
func (u Uint128) Rsh(n uint) (v Uint128) {
	shrParts(v.parts[:], u.parts[:], n)
	return v
}

// MsbPos returns the index of the most significant set bit, counting from
// 0 at the least significant bit, or -1 if u is zero.
func (u Uint128) MsbPos() int { return msbPosParts(u.parts[:]) }

func (u Uint128) BitLen() int { return msbPosParts(u.parts[:]) + 1 }

func (u Uint128) LeadingZeros() uint { return leadingZerosParts(u.parts[:]) }

func (u Uint128) TrailingZeros() uint { return trailingZerosParts(u.parts[:]) }

// Mul returns u * n, wrapping around 2**128. The product is accumulated
// over half width subparts so the kernel never needs an integer wider than
// a limb.
func (u Uint128) Mul(n Uint128) (v Uint128) {
	var ua, na, va [4]uint64
	scatterParts(ua[:], u.parts[:])
	scatterParts(na[:], n.parts[:])
	mulSubparts(va[:], ua[:], na[:])
	gatherParts(v.parts[:], va[:])
	return v
}

// Quo returns the quotient of u divided by 'by', truncated towards zero.
// Quo panics if 'by' is zero. See QuoRem if you need both parts of the
// result.
func (u Uint128) Quo(by Uint128) (q Uint128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient and remainder of u divided by 'by'. The
// quotient truncates towards zero; QuoRem panics if 'by' is zero.
func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	if by.IsZero() {
		panic("mulprec: division by zero")
	}

	if (u.parts[1] | by.parts[1]) == 0 {
		// Both operands fit in one limb. This is protected from div/0
		// because by.parts[0] is guaranteed to be set if by.parts[1] is 0:
		q.parts[0] = u.parts[0] / by.parts[0]
		r.parts[0] = u.parts[0] % by.parts[0]
		return q, r
	}

	var us, bys, qs, rs [4]uint64
	var scratch [9]uint64
	scatterParts(us[:], u.parts[:])
	scatterParts(bys[:], by.parts[:])
	quoRemSubparts(qs[:], rs[:], us[:], bys[:], scratch[:])
	gatherParts(q.parts[:], qs[:])
	gatherParts(r.parts[:], rs[:])
	return q, r
}

// Rem returns the remainder of u divided by 'by'. Rem panics if 'by' is
// zero.
func (u Uint128) Rem(by Uint128) (r Uint128) {
	_, r = u.QuoRem(by)
	return r
}

func (u Uint128) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Uint128) UnmarshalText(bts []byte) (err error) {
	v, _, err := Uint128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint128) MarshalJSON() ([]byte, error) { return []byte(`"` + u.String() + `"`), nil }

func (u *Uint128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("mulprec: uint128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	v, _, err := Uint128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
