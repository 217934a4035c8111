package mulprec

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// limb is the constraint satisfied by the native unsigned types that can act
// as an element of a parts array. A value is stored least significant limb
// first. For signed interpretations the top bit of the last limb is the sign
// bit and negative values use the two's complement pattern across the whole
// array; the kernel relies on the wrapping behaviour of Go's unsigned
// arithmetic for the two's complement ops.
type limb interface {
	constraints.Unsigned
}

// limbBits returns the width of T in bits.
func limbBits[T limb]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// partialAdd adds two limbs and an incoming carry, returning the wrapped sum
// and the outgoing carry. The carry is recovered by comparing the wrapped
// intermediate results against their inputs.
func partialAdd[T limb](a, b, c T) (z, carry T) {
	bc := b + c
	z = a + bc
	if z < a || bc < b {
		carry = 1
	}
	return z, carry
}

// partialSub subtracts a limb and an incoming borrow from a, returning the
// wrapped difference and the outgoing borrow.
func partialSub[T limb](a, b, c T) (z, borrow T) {
	bc := b + c
	z = a - bc
	if z > a || bc < b {
		borrow = 1
	}
	return z, borrow
}

// addParts adds b to a limb by limb into dst, rippling the carry upward from
// the least significant position. Carry out of the top limb is discarded.
// dst may alias a or b.
func addParts[T limb](dst, a, b []T) {
	var c T
	for i := range a {
		dst[i], c = partialAdd(a[i], b[i], c)
	}
}

// subParts subtracts b from a limb by limb into dst, rippling the borrow.
// Borrow out of the top limb is discarded. dst may alias a or b.
func subParts[T limb](dst, a, b []T) {
	var c T
	for i := range a {
		dst[i], c = partialSub(a[i], b[i], c)
	}
}

// negParts stores the result of subtracting a from zero in dst. Negating the
// minimum signed value wraps back to itself, as does negating zero.
func negParts[T limb](dst, a []T) {
	var c T
	for i := range a {
		dst[i], c = partialSub(0, a[i], c)
	}
}

func isZeroParts[T limb](a []T) bool {
	for i := 0; i < len(a); i++ {
		if a[i] != 0 {
			return false
		}
	}
	return true
}

// ultParts reports whether a is less than b when both are read as unsigned
// magnitudes, comparing from the most significant limb down.
func ultParts[T limb](a, b []T) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func cmpParts[T limb](a, b []T) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// isNonnegParts reports whether the sign bit, the top bit of the last limb,
// is clear.
func isNonnegParts[T limb](a []T) bool {
	w := limbBits[T]()
	return a[len(a)-1]>>(w-1) == 0
}

// ltSignedParts orders a and b as signed values. When the signs agree, the
// unsigned order of the two's complement patterns is the signed order; when
// they disagree, the negative operand is smaller regardless of magnitude.
// Both cases collapse into comparing the unsigned order against the sign
// agreement.
func ltSignedParts[T limb](a, b []T) bool {
	return ultParts(a, b) == (isNonnegParts(a) == isNonnegParts(b))
}

func notParts[T limb](dst, a []T) {
	for i := range a {
		dst[i] = ^a[i]
	}
}

func andParts[T limb](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] & b[i]
	}
}

func andNotParts[T limb](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] &^ b[i]
	}
}

func orParts[T limb](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] | b[i]
	}
}

func xorParts[T limb](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}

// shlParts shifts src left by n bits into dst, treating the array as one
// contiguous bit string. n is reduced modulo the total width, so an
// out of range count wraps around rather than zeroing the value. Vacated
// low bits fill with zero. dst may alias src; the loop runs from the top
// limb down so no source limb is clobbered before it is consumed.
func shlParts[T limb](dst, src []T, n uint) {
	w := limbBits[T]()
	n %= uint(len(src)) * w
	whole, part := int(n/w), n%w
	for i := len(src) - 1; i >= 0; i-- {
		var v T
		if j := i - whole; j >= 0 {
			v = src[j] << part
			if part > 0 && j > 0 {
				v |= src[j-1] >> (w - part)
			}
		}
		dst[i] = v
	}
}

// shrParts shifts src right by n bits into dst. The shift is logical even
// for signed interpretations; the sign bit is not propagated. n is reduced
// modulo the total width. dst may alias src.
func shrParts[T limb](dst, src []T, n uint) {
	w := limbBits[T]()
	n %= uint(len(src)) * w
	whole, part := int(n/w), n%w
	for i := 0; i < len(src); i++ {
		var v T
		if j := i + whole; j < len(src) {
			v = src[j] >> part
			if part > 0 && j < len(src)-1 {
				v |= src[j+1] << (w - part)
			}
		}
		dst[i] = v
	}
}

// msbPosParts returns the index of the most significant set bit, where bit 0
// is the least significant bit of the first limb, or -1 if the value is
// zero.
func msbPosParts[T limb](a []T) int {
	w := int(limbBits[T]())
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*w + bits.Len64(uint64(a[i])) - 1
		}
	}
	return -1
}

func leadingZerosParts[T limb](a []T) uint {
	total := uint(len(a)) * limbBits[T]()
	msb := msbPosParts(a)
	if msb < 0 {
		return total
	}
	return total - 1 - uint(msb)
}

func trailingZerosParts[T limb](a []T) uint {
	w := limbBits[T]()
	for i := 0; i < len(a); i++ {
		if a[i] != 0 {
			return uint(i)*w + uint(bits.TrailingZeros64(uint64(a[i])))
		}
	}
	return uint(len(a)) * w
}

// copyBits copies the bit string held in src into dst, where the two slices
// may use different limb types. When dst is wider than src the excess bits
// fill with the top bit of src if signExtend is set, with zeros otherwise.
// When dst is narrower the copy truncates, which is the two's complement
// narrowing conversion.
func copyBits[D, S limb](dst []D, src []S, signExtend bool) {
	dw, sw := limbBits[D](), limbBits[S]()
	dstBits := uint(len(dst)) * dw
	srcBits := uint(len(src)) * sw

	for i := range dst {
		dst[i] = 0
	}

	n := srcBits
	if dstBits < n {
		n = dstBits
	}
	for i, s := range src {
		pos := uint(i) * sw
		if pos >= n {
			break
		}
		rem := sw
		if pos+rem > n {
			rem = n - pos
			s &= S(1)<<rem - 1
		}
		for {
			off := pos % dw
			dst[pos/dw] |= D(s) << off
			take := dw - off
			if take >= rem {
				break
			}
			s >>= take
			pos += take
			rem -= take
		}
	}

	if signExtend && srcBits > 0 && srcBits < dstBits && src[len(src)-1]>>(sw-1) != 0 {
		j := srcBits / dw
		dst[j] |= ^D(0) << (srcBits % dw)
		for j++; j < uint(len(dst)); j++ {
			dst[j] = ^D(0)
		}
	}
}
