package mulprec

import "math/bits"

// Unsigned division over subpart arrays. The divisor is trimmed to its
// significant subparts first; a single subpart divisor takes the short
// division path and anything wider runs Knuth's algorithm D (The Art of
// Computer Programming, volume 2, section 4.3.1). Working in half width
// subparts keeps every intermediate inside the native limb type, so the
// kernel ports to any unsigned limb without a double width helper.
//
// The kernel assumes a nonzero divisor. Public entry points check for zero
// before calling in.

// sigSubparts returns the number of significant subparts in a, trimming
// zeros from the top.
func sigSubparts[T limb](a []T) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// shortDivSubparts divides u by the single subpart v, storing the quotient
// in q and returning the remainder. One pass of single digit long division
// from the most significant subpart down; the running remainder stays below
// v, so remainder and current subpart always pack into one limb.
func shortDivSubparts[T limb](q, u []T, v T) (rem T) {
	h := subpartBits[T]()
	for i := len(u) - 1; i >= 0; i-- {
		d := rem<<h | u[i]
		q[i] = d / v
		rem = d % v
	}
	return rem
}

// quoRemSubparts divides the subpart array u by v, storing the quotient in
// q and the remainder in r. q and r must be at least as long as u; all four
// arrays hold half width subparts. scratch needs room for len(u)+1+len(v)
// elements and is clobbered. v must not be zero.
func quoRemSubparts[T limb](q, r, u, v, scratch []T) {
	for i := range q {
		q[i] = 0
	}
	for i := range r {
		r[i] = 0
	}

	m, n := sigSubparts(u), sigSubparts(v)
	if m < n {
		copy(r, u)
		return
	}
	if n == 1 {
		r[0] = shortDivSubparts(q[:m], u[:m], v[0])
		return
	}

	un := scratch[: m+1 : m+1]
	vn := scratch[m+1 : m+1+n]
	longDivSubparts(q, r, u[:m], v[:n], un, vn)
}

// longDivSubparts runs algorithm D on u (m subparts) over v (n subparts),
// with 2 <= n <= m. un and vn receive the normalized copies of the
// operands; un gains one subpart of headroom from the shift.
func longDivSubparts[T limb](q, r, u, v, un, vn []T) {
	h := subpartBits[T]()
	base := T(1) << h
	mask := base - 1
	m, n := len(u), len(v)

	// Normalize so the top subpart of the divisor has its high bit set.
	// Knuth shows the two subpart quotient estimate is then off by at most
	// two. Subparts carry no bits at or above h, so the uniform shift
	// formula also covers s == 0.
	s := h - uint(bits.Len64(uint64(v[n-1])))
	for i := n - 1; i > 0; i-- {
		vn[i] = (v[i]<<s | v[i-1]>>(h-s)) & mask
	}
	vn[0] = v[0] << s & mask
	un[m] = u[m-1] >> (h - s)
	for i := m - 1; i > 0; i-- {
		un[i] = (u[i]<<s | u[i-1]>>(h-s)) & mask
	}
	un[0] = u[0] << s & mask

	for j := m - n; j >= 0; j-- {
		// Estimate the quotient digit from the top two subparts of the
		// current window over the top subpart of the divisor.
		t := un[j+n]<<h | un[j+n-1]
		qhat := t / vn[n-1]
		rhat := t % vn[n-1]

		// At most two corrections fire. rhat growing past a subpart ends
		// the loop early because the product test can no longer fail.
		for qhat >= base || qhat*vn[n-2] > rhat<<h|un[j+n-2] {
			qhat--
			rhat += vn[n-1]
			if rhat >= base {
				break
			}
		}

		// Multiply and subtract the scaled divisor from the window,
		// rippling carry and borrow together. qhat never exceeds base
		// here, so the product plus carry still fits the limb.
		var carry, borrow T
		for i := 0; i < n; i++ {
			p := qhat*vn[i] + carry
			carry = p >> h
			ps := p&mask + borrow
			if un[j+i] < ps {
				un[j+i] += base - ps
				borrow = 1
			} else {
				un[j+i] -= ps
				borrow = 0
			}
		}
		if un[j+n] < carry+borrow {
			un[j+n] += base - (carry + borrow)
			borrow = 1
		} else {
			un[j+n] -= carry + borrow
			borrow = 0
		}

		// The window went negative, so the estimate was still one too
		// large. Add one divisor back; the final carry cancels the borrow.
		if borrow != 0 {
			qhat--
			var c T
			for i := 0; i < n; i++ {
				x := un[j+i] + vn[i] + c
				un[j+i] = x & mask
				c = x >> h
			}
			un[j+n] = (un[j+n] + c) & mask
		}

		q[j] = qhat
	}

	// Only the remainder needs denormalizing; the shifts cancel out of the
	// quotient.
	for i := 0; i < n; i++ {
		r[i] = un[i] >> s
		if s > 0 {
			r[i] |= (un[i+1] << (h - s)) & mask
		}
	}
}
