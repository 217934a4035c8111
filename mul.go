package mulprec

// mulSubparts computes the schoolbook product of the subpart arrays a and b
// into dst, truncated to len(dst) subparts. The carry out of each column
// ripples into the next one. Half width subparts keep every intermediate
// inside the native limb type: the worst case product plus column plus
// carry is exactly the all ones limb.
func mulSubparts[T limb](dst, a, b []T) {
	h := subpartBits[T]()
	mask := T(1)<<h - 1

	for i := range dst {
		dst[i] = 0
	}
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry T
		for j := 0; i+j < len(dst); j++ {
			var bj T
			if j < len(b) {
				bj = b[j]
			} else if carry == 0 {
				break
			}
			acc := ai*bj + dst[i+j] + carry
			dst[i+j] = acc & mask
			carry = acc >> h
		}
	}
}
