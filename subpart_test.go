package mulprec

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestSubpartBits(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(4), subpartBits[uint8]())
	tt.MustEqual(uint(8), subpartBits[uint16]())
	tt.MustEqual(uint(16), subpartBits[uint32]())
	tt.MustEqual(uint(32), subpartBits[uint64]())
}

func TestScatterParts(t *testing.T) {
	tt := assert.WrapTB(t)

	var sub [4]uint64
	scatterParts(sub[:], []uint64{0x123456789ABCDEF0, 0xFEDCBA9876543210})
	tt.MustEqual([4]uint64{0x9ABCDEF0, 0x12345678, 0x76543210, 0xFEDCBA98}, sub)

	var limbs [2]uint64
	gatherParts(limbs[:], sub[:])
	tt.MustEqual([2]uint64{0x123456789ABCDEF0, 0xFEDCBA9876543210}, limbs)

	var sub8 [4]uint8
	scatterParts(sub8[:], []uint8{0xAB, 0x12})
	tt.MustEqual([4]uint8{0xB, 0xA, 0x2, 0x1}, sub8)
}

func testScatterGather[T limb](t *testing.T, n int) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))
	h := subpartBits[T]()
	mask := T(1)<<h - 1

	for i := 0; i < 10000; i++ {
		src := randParts[T](rng, n)
		sub := make([]T, n*2)
		scatterParts(sub, src)

		// Scattering must leave no subpart with bits above the half line:
		for _, s := range sub {
			tt.MustAssert(s&^mask == 0, "stray bits in %x at index %d", s, i)
		}

		dst := make([]T, n)
		gatherParts(dst, sub)
		tt.MustEqual(partsBig(src).String(), partsBig(dst).String(), "failed at index %d", i)
	}
}

func TestScatterGatherRoundTrip(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { testScatterGather[uint8](t, 4) })
	t.Run("uint16", func(t *testing.T) { testScatterGather[uint16](t, 4) })
	t.Run("uint32", func(t *testing.T) { testScatterGather[uint32](t, 4) })
	t.Run("uint64", func(t *testing.T) { testScatterGather[uint64](t, 2) })
}

func TestRepackBits(t *testing.T) {
	tt := assert.WrapTB(t)

	// Elements straddle when neither width divides the other:
	var narrow [3]uint8
	repackBits(narrow[:], 3, []uint8{0b10110101}, 8)
	tt.MustEqual([3]uint8{0b101, 0b110, 0b10}, narrow)

	var wide [1]uint8
	repackBits(wide[:], 8, narrow[:], 3)
	tt.MustEqual(uint8(0b10110101), wide[0])

	// Bits past the capacity of dst drop:
	var tight [2]uint8
	repackBits(tight[:], 3, []uint8{0b10110101}, 8)
	tt.MustEqual([2]uint8{0b101, 0b110}, tight)

	// Excess dst elements fill with zero:
	var slack [4]uint8
	slack[3] = 0xFF
	repackBits(slack[:], 3, []uint8{0b101}, 8)
	tt.MustEqual([4]uint8{0b101, 0, 0, 0}, slack)
}
