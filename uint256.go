package mulprec

import (
	"fmt"
	"math/big"
	"strconv"
)

// Uint256 is an unsigned integer with 256 bits of precision, stored as an
// array of four 64 bit limbs, least significant limb first. The type is
// mainly useful for holding intermediates that do not fit a Uint128; it
// carries the same operation set, backed by the same kernel.
type Uint256 struct {
	parts [4]uint64
}

// Uint256FromParts constructs a Uint256 directly from its limb array.
func Uint256FromParts(parts [4]uint64) Uint256 { return Uint256{parts: parts} }

// Uint256FromRaw constructs a Uint256 from the four quarters of the bit
// pattern, most significant first.
func Uint256FromRaw(hi, hm, lm, lo uint64) Uint256 {
	return Uint256{parts: [4]uint64{lo, lm, hm, hi}}
}

func Uint256From64(v uint64) Uint256 { return Uint256{parts: [4]uint64{v, 0, 0, 0}} }

// Uint256FromUint128 zero extends a Uint128 to 256 bits.
func Uint256FromUint128(v Uint128) (out Uint256) {
	out.parts[0], out.parts[1] = v.parts[0], v.parts[1]
	return out
}

// Uint256FromString creates a Uint256 from a string. Overflow truncates to
// MaxUint256 and sets accurate to 'false'. Only decimal strings are
// supported.
func Uint256FromString(s string) (out Uint256, accurate bool, err error) {
	return ParseInt(Uint256Traits{}, s)
}

// Uint256FromBigInt creates a Uint256 from a big.Int. Overflow truncates to
// MaxUint256 and sets accurate to 'false'.
func Uint256FromBigInt(v *big.Int) (out Uint256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		if lw > 4 {
			return MaxUint256, false
		}
		for i := 0; i < lw; i++ {
			out.parts[i] = uint64(words[i])
		}

	case 32:
		lw := len(words)
		if lw > 8 {
			return MaxUint256, false
		}
		for i := 0; i < lw; i++ {
			out.parts[i/2] |= uint64(words[i]) << (uint(i%2) * 32)
		}

	default:
		panic("mulprec: unsupported bit size")
	}

	return out, true
}

// RandUint256 generates an unsigned 256 bit random integer from an external
// source.
func RandUint256(source RandSource) (out Uint256) {
	for i := range out.parts {
		out.parts[i] = source.Uint64()
	}
	return out
}

func (u Uint256) IsZero() bool { return u == zeroUint256 }

// Raw returns the four quarters of the bit pattern, most significant first.
func (u Uint256) Raw() (hi, hm, lm, lo uint64) {
	return u.parts[3], u.parts[2], u.parts[1], u.parts[0]
}

// Parts returns a snapshot of the limb array, least significant limb first.
func (u Uint256) Parts() [4]uint64 { return u.parts }

func (u Uint256) String() string {
	if u.parts[1]|u.parts[2]|u.parts[3] == 0 {
		if u.parts[0] == 0 {
			return "0"
		}
		return strconv.FormatUint(u.parts[0], 10)
	}
	return FormatInt(Uint256Traits{}, u)
}

func (u Uint256) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but it's not forever; we need to
	// support the full suite of verbs without the big.Int round trip.
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this value into an existing big.Int, allowing you to
// retain and reuse the allocated storage.
func (u Uint256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if ln < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		for i := 0; i < 4; i++ {
			bits[i] = big.Word(u.parts[i])
		}
		b.SetBits(bits)

	default:
		b.SetUint64(u.parts[3])
		for i := 2; i >= 0; i-- {
			b.Lsh(b, 64)
			b.Add(b, new(big.Int).SetUint64(u.parts[i]))
		}
	}
}

// AsBigInt allocates a new big.Int from this value. IntoBigInt allows you
// to recycle the storage instead.
func (u Uint256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint256) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsUint128 truncates the value to its low 128 bits.
func (u Uint256) AsUint128() Uint128 {
	return Uint128{parts: [2]uint64{u.parts[0], u.parts[1]}}
}

// IsUint128 reports whether u is representable in a Uint128.
func (u Uint256) IsUint128() bool {
	return u.parts[2]|u.parts[3] == 0
}

func (u Uint256) AsUint64() uint64 { return u.parts[0] }

func (u Uint256) IsUint64() bool {
	return u.parts[1]|u.parts[2]|u.parts[3] == 0
}

func (u Uint256) Inc() (v Uint256) {
	v = u
	var c uint64
	v.parts[0], c = partialAdd(u.parts[0], 1, 0)
	for i := 1; c != 0 && i < 4; i++ {
		v.parts[i], c = partialAdd(u.parts[i], 0, c)
	}
	return v
}

func (u Uint256) Dec() (v Uint256) {
	v = u
	var c uint64
	v.parts[0], c = partialSub(u.parts[0], 1, 0)
	for i := 1; c != 0 && i < 4; i++ {
		v.parts[i], c = partialSub(u.parts[i], 0, c)
	}
	return v
}

// Add returns u + n, wrapping around on overflow.
func (u Uint256) Add(n Uint256) (v Uint256) {
	addParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

// Sub returns u - n, wrapping around on underflow.
func (u Uint256) Sub(n Uint256) (v Uint256) {
	subParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

// Neg returns zero minus u, wrapping around.
func (u Uint256) Neg() (v Uint256) {
	negParts(v.parts[:], u.parts[:])
	return v
}

func (u Uint256) Cmp(n Uint256) int {
	return cmpParts(u.parts[:], n.parts[:])
}

func (u Uint256) Equal(n Uint256) bool            { return u == n }
func (u Uint256) GreaterThan(n Uint256) bool      { return ultParts(n.parts[:], u.parts[:]) }
func (u Uint256) GreaterOrEqualTo(n Uint256) bool { return !ultParts(u.parts[:], n.parts[:]) }
func (u Uint256) LessThan(n Uint256) bool         { return ultParts(u.parts[:], n.parts[:]) }
func (u Uint256) LessOrEqualTo(n Uint256) bool    { return !ultParts(n.parts[:], u.parts[:]) }

func (u Uint256) And(n Uint256) (v Uint256) {
	andParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

func (u Uint256) AndNot(n Uint256) (v Uint256) {
	andNotParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

func (u Uint256) Not() (v Uint256) {
	notParts(v.parts[:], u.parts[:])
	return v
}

func (u Uint256) Or(n Uint256) (v Uint256) {
	orParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

func (u Uint256) Xor(n Uint256) (v Uint256) {
	xorParts(v.parts[:], u.parts[:], n.parts[:])
	return v
}

// Lsh shifts u left by n bits, modulo 256. Vacated bits fill with zero.
func (u Uint256) Lsh(n uint) (v Uint256) {
	shlParts(v.parts[:], u.parts[:], n)
	return v
}

// Rsh shifts u right by n bits, modulo 256. Vacated bits fill with zero.
func (u Uint256) Rsh(n uint) (v Uint256) {
	shrParts(v.parts[:], u.parts[:], n)
	return v
}

// MsbPos returns the index of the most significant set bit, or -1 if u is
// zero.
func (u Uint256) MsbPos() int { return msbPosParts(u.parts[:]) }

func (u Uint256) BitLen() int { return msbPosParts(u.parts[:]) + 1 }

func (u Uint256) LeadingZeros() uint { return leadingZerosParts(u.parts[:]) }

func (u Uint256) TrailingZeros() uint { return trailingZerosParts(u.parts[:]) }

// Mul returns u * n, wrapping around 2**256.
func (u Uint256) Mul(n Uint256) (v Uint256) {
	var ua, na, va [8]uint64
	scatterParts(ua[:], u.parts[:])
	scatterParts(na[:], n.parts[:])
	mulSubparts(va[:], ua[:], na[:])
	gatherParts(v.parts[:], va[:])
	return v
}

// MulUint128 returns the full 256 bit product of two 128 bit values, which
// cannot overflow.
func MulUint128(u, n Uint128) (v Uint256) {
	var ua, na [4]uint64
	var va [8]uint64
	scatterParts(ua[:], u.parts[:])
	scatterParts(na[:], n.parts[:])
	mulSubparts(va[:], ua[:], na[:])
	gatherParts(v.parts[:], va[:])
	return v
}

// Quo returns the quotient of u divided by 'by', truncated towards zero.
// Quo panics if 'by' is zero. See QuoRem if you need both parts of the
// result.
func (u Uint256) Quo(by Uint256) (q Uint256) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient and remainder of u divided by 'by'. The
// quotient truncates towards zero; QuoRem panics if 'by' is zero.
func (u Uint256) QuoRem(by Uint256) (q, r Uint256) {
	if by.IsZero() {
		panic("mulprec: division by zero")
	}

	if u.IsUint64() && by.IsUint64() {
		// This is protected from div/0 because by.parts[0] is guaranteed
		// to be set if the other parts are 0:
		q.parts[0] = u.parts[0] / by.parts[0]
		r.parts[0] = u.parts[0] % by.parts[0]
		return q, r
	}

	var us, bys, qs, rs [8]uint64
	var scratch [17]uint64
	scatterParts(us[:], u.parts[:])
	scatterParts(bys[:], by.parts[:])
	quoRemSubparts(qs[:], rs[:], us[:], bys[:], scratch[:])
	gatherParts(q.parts[:], qs[:])
	gatherParts(r.parts[:], rs[:])
	return q, r
}

// Rem returns the remainder of u divided by 'by'. Rem panics if 'by' is
// zero.
func (u Uint256) Rem(by Uint256) (r Uint256) {
	_, r = u.QuoRem(by)
	return r
}

func (u Uint256) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Uint256) UnmarshalText(bts []byte) (err error) {
	v, _, err := Uint256FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint256) MarshalJSON() ([]byte, error) { return []byte(`"` + u.String() + `"`), nil }

func (u *Uint256) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("mulprec: uint256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	v, _, err := Uint256FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
