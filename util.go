package mulprec

type RandSource interface {
	Uint64() uint64
}

// DifferenceUint128 subtracts the smaller of a and b from the larger.
func DifferenceUint128(a, b Uint128) Uint128 {
	if ultParts(a.parts[:], b.parts[:]) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// LargerUint128 returns the larger of a and b, or a when they are equal.
func LargerUint128(a, b Uint128) Uint128 {
	if ultParts(a.parts[:], b.parts[:]) {
		return b
	}
	return a
}

// SmallerUint128 returns the smaller of a and b, or a when they are equal.
func SmallerUint128(a, b Uint128) Uint128 {
	if ultParts(b.parts[:], a.parts[:]) {
		return b
	}
	return a
}

// DifferenceInt128 subtracts the smaller of a and b from the larger. If the
// operands are more than MaxInt128 apart the difference wraps negative.
func DifferenceInt128(a, b Int128) Int128 {
	if ltSignedParts(a.parts[:], b.parts[:]) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
