/*
Package mulprec provides fixed width multiple precision integer types built
from arrays of native unsigned limbs: Uint128, Int128 and Uint256. All
arithmetic wraps around at the width boundary, like Go's built in integers
and unlike big.Int.

The types are value types; all operations return new values.

Simple example:

	u1 := Uint128From64(math.MaxUint64)
	u2 := Uint128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Values can be created from a variety of sources:

	Uint128FromParts(parts [2]uint64) Uint128
	Uint128FromRaw(hi, lo uint64) Uint128
	Uint128From64(v uint64) Uint128
	Uint128From32(v uint32) Uint128
	Uint128From16(v uint16) Uint128
	Uint128From8(v uint8) Uint128
	Uint128FromUint(v uint) Uint128
	Uint128FromInt(v int) (out Uint128, accurate bool)
	Uint128FromString(s string) (out Uint128, accurate bool, err error)
	Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool)
	Uint128FromFloat32(f float32) (out Uint128, inRange bool)
	Uint128FromFloat64(f float64) (out Uint128, inRange bool)

Int128 and Uint256 carry the equivalent set.

The Integer interface describes the three types to generic code, and backs
the decimal conversions FormatInt, AppendInt and ParseInt.

Uint128, Int128 and Uint256 support the following formatting and
marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package mulprec
