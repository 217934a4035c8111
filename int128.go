package mulprec

import (
	"fmt"
	"math/big"
	"strconv"
)

// Int128 is a signed integer with 128 bits of precision, stored as an array
// of two 64 bit limbs, least significant limb first. Negative values use
// the two's complement pattern across the whole array; the sign bit is the
// top bit of the last limb.
type Int128 struct {
	parts [2]uint64
}

// Int128FromString creates an Int128 from a string. Overflow truncates to
// MaxInt128 or MinInt128 and sets accurate to 'false'. Only decimal strings
// are supported.
func Int128FromString(s string) (out Int128, accurate bool, err error) {
	return ParseInt(Int128Traits{}, s)
}

// Int128FromParts constructs an Int128 directly from its limb array.
func Int128FromParts(parts [2]uint64) Int128 { return Int128{parts: parts} }

// Int128FromRaw constructs an Int128 from the high and low halves of the
// bit pattern.
func Int128FromRaw(hi, lo uint64) Int128 { return Int128{parts: [2]uint64{lo, hi}} }

func Int128From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return Int128{parts: [2]uint64{uint64(v), hi}}
}

func Int128From32(v int32) Int128   { return Int128From64(int64(v)) }
func Int128From16(v int16) Int128   { return Int128From64(int64(v)) }
func Int128From8(v int8) Int128     { return Int128From64(int64(v)) }
func Int128FromInt(v int) Int128    { return Int128From64(int64(v)) }
func Int128FromU64(v uint64) Int128 { return Int128{parts: [2]uint64{v, 0}} }

// Int128FromBigInt creates an Int128 from a big.Int. Overflow truncates to
// MaxInt128 or MinInt128 and sets accurate to 'false'.
func Int128FromBigInt(v *big.Int) (out Int128, accurate bool) {
	neg := v.Sign() < 0

	// big.Int words always hold the absolute value.
	mag, accurate := Uint128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if cmp := mag.Cmp(maxInt128AsUint128); cmp == 0 {
			out = MaxInt128
		} else if cmp > 0 {
			out, accurate = MaxInt128, false
		} else {
			out = mag.AsInt128()
		}

	} else {
		if cmp := mag.Cmp(minInt128AsAbsUint128); cmp == 0 {
			out = MinInt128
		} else if cmp > 0 {
			out, accurate = MinInt128, false
		} else {
			out = mag.AsInt128().Neg()
		}
	}

	return out, accurate
}

func Int128FromFloat32(f float32) (out Int128, inRange bool) {
	return Int128FromFloat64(float64(f))
}

// Int128FromFloat64 creates an Int128 from a float64. Any fractional
// portion is truncated towards zero. Floats outside the bounds of an Int128
// are clamped to the min or max value and inRange is set to 'false'.
//
// NaN is treated as 0, inRange is set to 'false'. This may change to a
// panic at some point.
func Int128FromFloat64(f float64) (out Int128, inRange bool) {
	const spillPos = wrapUint64Float
	const spillNeg = -wrapUint64Float

	if f == 0 {
		return out, true

	} else if f != f { // f != f == isnan
		return out, false

	} else if f < 0 {
		// Converting a negative float64 straight to uint64 is
		// implementation-dependent, so both branches negate an exact
		// unsigned magnitude instead.
		if f > spillNeg {
			return Int128{parts: [2]uint64{uint64(-f), 0}}.Neg(), true
		} else if f >= minInt128Float {
			f = -f
			out.parts[1] = uint64(f / wrapUint64Float)
			out.parts[0] = uint64(modpos(f, wrapUint64Float))
			return out.Neg(), true
		} else {
			return MinInt128, false
		}

	} else {
		if f < spillPos {
			return Int128{parts: [2]uint64{uint64(f), 0}}, true
		} else if f < wrapInt128Float {
			out.parts[1] = uint64(f / wrapUint64Float)
			out.parts[0] = uint64(modpos(f, wrapUint64Float))
			return out, true
		} else {
			return MaxInt128, false
		}
	}
}

// RandInt128 generates a signed 128 bit random integer from an external
// source.
func RandInt128(source RandSource) (out Int128) {
	return RandUint128(source).AsInt128()
}

func (i Int128) IsZero() bool { return i == zeroInt128 }

// Raw returns the high and low halves of the bit pattern.
func (i Int128) Raw() (hi, lo uint64) { return i.parts[1], i.parts[0] }

// Parts returns a snapshot of the limb array, least significant limb first.
func (i Int128) Parts() [2]uint64 { return i.parts }

func (i Int128) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}
	return FormatInt(Int128Traits{}, i)
}

func (i Int128) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but it's not forever; we need to
	// support the full suite of verbs without the big.Int round trip.
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this value into an existing big.Int, allowing you to
// retain and reuse the allocated storage.
func (i Int128) IntoBigInt(b *big.Int) {
	Uint128{parts: i.parts}.IntoBigInt(b)
	if !isNonnegParts(i.parts[:]) {
		b.Xor(b, maxBigUint128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int from this value. IntoBigInt allows you
// to recycle the storage instead.
func (i Int128) AsBigInt() (b *big.Int) {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i Int128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

// AsUint128 reinterprets the bit pattern as an unsigned value. Negative
// inputs come out as values greater than MaxInt128.
func (i Int128) AsUint128() Uint128 {
	return Uint128{parts: i.parts}
}

// IsUint128 reports whether i is representable in a Uint128.
func (i Int128) IsUint128() bool {
	return isNonnegParts(i.parts[:])
}

func (i Int128) AsFloat64() float64 {
	if i.IsNonneg() {
		return i.AsUint128().AsFloat64()
	}
	// Negating MinInt128 wraps back to the same pattern, which reads as
	// 2**127 unsigned, so even the extreme converts exactly.
	return -i.Neg().AsUint128().AsFloat64()
}

// AsInt64 truncates the value to its low 64 bits. Values outside the int64
// range over/underflow. See IsInt64 if you want to check first.
func (i Int128) AsInt64() int64 {
	return int64(i.parts[0])
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int128) IsInt64() bool {
	if isNonnegParts(i.parts[:]) {
		return i.parts[1] == 0 && i.parts[0] <= maxInt64
	}
	return i.parts[1] == maxUint64 && i.parts[0] >= signBit
}

func (i Int128) Sign() int {
	if i == zeroInt128 {
		return 0
	} else if isNonnegParts(i.parts[:]) {
		return 1
	}
	return -1
}

// IsNonneg reports whether the sign bit is clear. Zero counts as
// nonnegative.
func (i Int128) IsNonneg() bool {
	return isNonnegParts(i.parts[:])
}

func (i Int128) Inc() (v Int128) {
	var c uint64
	v.parts[0], c = partialAdd(i.parts[0], 1, 0)
	v.parts[1], _ = partialAdd(i.parts[1], 0, c)
	return v
}

func (i Int128) Dec() (v Int128) {
	var c uint64
	v.parts[0], c = partialSub(i.parts[0], 1, 0)
	v.parts[1], _ = partialSub(i.parts[1], 0, c)
	return v
}

// Add returns i + n, wrapping around on overflow. Adding MinInt128 to
// itself wraps to zero.
func (i Int128) Add(n Int128) (v Int128) {
	addParts(v.parts[:], i.parts[:], n.parts[:])
	return v
}

// Sub returns i - n, wrapping around on underflow.
func (i Int128) Sub(n Int128) (v Int128) {
	subParts(v.parts[:], i.parts[:], n.parts[:])
	return v
}

// Neg returns zero minus i. Negating MinInt128 overflows and wraps back to
// MinInt128; negating zero is zero.
func (i Int128) Neg() (v Int128) {
	negParts(v.parts[:], i.parts[:])
	return v
}

// Abs returns the absolute value of i. Abs(MinInt128) wraps back to
// MinInt128; AbsUint128 avoids the overflow.
func (i Int128) Abs() Int128 {
	if isNonnegParts(i.parts[:]) {
		return i
	}
	return i.Neg()
}

// AbsUint128 returns the absolute value of i as an unsigned value, which
// can represent the magnitude of MinInt128 without wrapping.
func (i Int128) AbsUint128() Uint128 {
	if isNonnegParts(i.parts[:]) {
		return Uint128{parts: i.parts}
	}
	return Uint128{parts: i.parts}.Neg()
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i Int128) Cmp(n Int128) int {
	if i == n {
		return 0
	} else if ltSignedParts(i.parts[:], n.parts[:]) {
		return -1
	}
	return 1
}

func (i Int128) Equal(n Int128) bool            { return i == n }
func (i Int128) GreaterThan(n Int128) bool      { return ltSignedParts(n.parts[:], i.parts[:]) }
func (i Int128) GreaterOrEqualTo(n Int128) bool { return !ltSignedParts(i.parts[:], n.parts[:]) }
func (i Int128) LessThan(n Int128) bool         { return ltSignedParts(i.parts[:], n.parts[:]) }
func (i Int128) LessOrEqualTo(n Int128) bool    { return !ltSignedParts(n.parts[:], i.parts[:]) }

func (i Int128) And(n Int128) (v Int128) {
	andParts(v.parts[:], i.parts[:], n.parts[:])
	return v
}

func (i Int128) AndNot(n Int128) (v Int128) {
	andNotParts(v.parts[:], i.parts[:], n.parts[:])
	return v
}

func (i Int128) Not() (v Int128) {
	notParts(v.parts[:], i.parts[:])
	return v
}

func (i Int128) Or(n Int128) (v Int128) {
	orParts(v.parts[:], i.parts[:], n.parts[:])
	return v
}

func (i Int128) Xor(n Int128) (v Int128) {
	xorParts(v.parts[:], i.parts[:], n.parts[:])
	return v
}

// Lsh shifts the bit pattern left by n bits, modulo 128. Vacated bits fill
// with zero.
func (i Int128) Lsh(n uint) (v Int128) {
	shlParts(v.parts[:], i.parts[:], n)
	return v
}

// Rsh shifts the bit pattern right by n bits, modulo 128. The shift is
// logical even though the value is signed; the sign bit is not propagated
// and vacated bits fill with zero. Divide by a power of two if you need an
// arithmetic shift.
func (i Int128) Rsh(n uint) (v Int128) {
	shrParts(v.parts[:], i.parts[:], n)
	return v
}

// MsbPos returns the index of the most significant set bit of the two's
// complement pattern, or -1 for zero. For any negative value this is the
// sign bit, 127.
func (i Int128) MsbPos() int { return msbPosParts(i.parts[:]) }

// Mul returns i * n, wrapping around as per the Go spec. Two's complement
// multiplication is the unsigned multiplication of the bit patterns, so
// the product runs through the same subpart kernel as Uint128.
func (i Int128) Mul(n Int128) (v Int128) {
	var ia, na, va [4]uint64
	scatterParts(ia[:], i.parts[:])
	scatterParts(na[:], n.parts[:])
	mulSubparts(va[:], ia[:], na[:])
	gatherParts(v.parts[:], va[:])
	return v
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// The remainder always takes the sign of the dividend. big.Int.DivMod()
// style Euclidean division is not supported.
func (i Int128) QuoRem(by Int128) (q, r Int128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroInt128) {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.LessThan(zeroInt128) {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsUint128().QuoRem(by.AsUint128())
	q, r = qu.AsInt128(), ru.AsInt128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// panic occurs. Quo implements truncated division (like Go); see QuoRem for
// more details.
func (i Int128) Quo(by Int128) (q Int128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero panic occurs. Rem implements truncated modulus (like
// Go); see QuoRem for more details.
func (i Int128) Rem(by Int128) (r Int128) {
	_, r = i.QuoRem(by)
	return r
}

func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int128) UnmarshalText(bts []byte) (err error) {
	v, _, err := Int128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("mulprec: int128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := Int128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
