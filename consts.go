package mulprec

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// float64(maxUint64) rounds up to 1<<64, and the wider maxes round up
	// the same way, so the float range checks compare strictly against the
	// exact wrap points instead.
	wrapUint64Float  = float64(1 << 64)
	wrapUint128Float = float64(1 << 128)
	wrapInt128Float  = float64(1 << 127)
	minInt128Float   = -float64(1 << 127)

	intSize = 32 << (^uint(0) >> 63)

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF
)

var (
	MaxInt128  = Int128{parts: [2]uint64{maxUint64, signMask}}
	MinInt128  = Int128{parts: [2]uint64{0, signBit}}
	MaxUint128 = Uint128{parts: [2]uint64{maxUint64, maxUint64}}
	MaxUint256 = Uint256{parts: [4]uint64{maxUint64, maxUint64, maxUint64, maxUint64}}

	zeroInt128  Int128
	zeroUint128 Uint128
	zeroUint256 Uint256

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
	maxBigInt64  = new(big.Int).SetUint64(maxInt64)

	maxBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	maxBigUint256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	minBigInt128, _ = new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	maxBigInt128, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	// wrapBigUint128 is 1 << 128, used to simulate over/underflow:
	wrapBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)

	// wrapBigUint256 is 1 << 256:
	wrapBigUint256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639936", 10)

	// wrapBigUint64 is 1 << 64:
	wrapBigUint64, _ = new(big.Int).SetString("18446744073709551616", 10)

	maxInt128AsUint128    = Uint128{parts: [2]uint64{maxUint64, signMask}}
	minInt128AsAbsUint128 = Uint128{parts: [2]uint64{0, signBit}}

	// This specifies the maximum error allowed between the float64 version of
	// a 128-bit int/uint and the result of the same operation performed by
	// big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
