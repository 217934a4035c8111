package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	mulprec "github.com/kspangsege/archon-sub006"
)

// This is a cheap-and-nasty experiment to find out whether a one bit at a
// time shift-and-subtract loop could beat the subpart division kernel for
// small divisors, which would have justified another fast path in QuoRem.
// It couldn't; the crossover never materialized on anything resembling real
// operand mixes. The binary divider doubles as an independent check of the
// kernel's quotients and remainders, so the experiment has been kept with
// the repository.

const usage = `Division strategy comparison

Usage: <iters> [seed]`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type divTally struct {
	Iterations int
	Seed       int64

	// Divisor bit lengths, bucketed in sixteens.
	Buckets [8]int

	Kernel time.Duration
	Binary time.Duration
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	iters, err := strconv.Atoi(os.Args[1])
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if len(os.Args) > 2 {
		seed, err = strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(seed))

	us := make([]mulprec.Uint128, iters)
	bys := make([]mulprec.Uint128, iters)
	qs := make([]mulprec.Uint128, iters)
	rs := make([]mulprec.Uint128, iters)

	for i := 0; i < iters; i++ {
		us[i] = mulprec.RandUint128(rng)

		// Divisor sizes spread uniformly across bit lengths; uniform
		// Uint128s would almost never produce a small one.
		bl := uint(rng.Intn(127)) + 1
		by := mulprec.RandUint128n(rng, mulprec.Uint128From64(1).Lsh(bl))
		if by.IsZero() {
			by = by.Inc()
		}
		bys[i] = by
	}

	tally := divTally{Iterations: iters, Seed: seed}
	for i := 0; i < iters; i++ {
		tally.Buckets[(bys[i].BitLen()-1)/16]++
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		qs[i], rs[i] = us[i].QuoRem(bys[i])
	}
	tally.Kernel = time.Since(start)

	start = time.Now()
	for i := 0; i < iters; i++ {
		bq, br := binQuoRem(us[i], bys[i])
		if !bq.Equal(qs[i]) || !br.Equal(rs[i]) {
			return fmt.Errorf("binary division disagrees for %v / %v: %v r %v != %v r %v",
				us[i], bys[i], bq, br, qs[i], rs[i])
		}
	}
	tally.Binary = time.Since(start)

	spew.Dump(tally)
	return nil
}

// binQuoRem is restoring division, one quotient bit per step. Lot of
// gymnastics in here because Uint128 doesn't expose its limbs; everything
// goes through the public shift and compare surface.
func binQuoRem(u, by mulprec.Uint128) (q, r mulprec.Uint128) {
	if by.GreaterThan(u) {
		return q, u
	}

	shift := uint(u.BitLen() - by.BitLen())
	by = by.Lsh(shift)

	for {
		q = q.Lsh(1)
		if u.GreaterOrEqualTo(by) {
			u = u.Sub(by)
			q = q.SetBit(0, 1)
		}
		by = by.Rsh(1)
		if shift == 0 {
			break
		}
		shift--
	}
	return q, u
}
