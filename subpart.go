package mulprec

// Multiplication and division do not run on whole limbs. Each limb is first
// unpacked into two half width subparts so that the product of two subparts,
// plus anything the schoolbook loops accumulate on top, still fits the
// native limb type. The subpart arrays are transient; they live in fixed
// size scratch owned by the caller and exist only for the duration of one
// operation.

// subpartBits returns the number of significant bits carried per subpart.
func subpartBits[T limb]() uint {
	return limbBits[T]() / 2
}

// repackBits rewrites the bit string held in src, srcWidth significant bits
// per element, into dst at dstWidth significant bits per element. Bits that
// straddle an element boundary spill into the following element, so neither
// width needs to divide the other. Excess dst elements fill with zero and
// excess src bits are dropped. Elements of src must not carry stray bits at
// or above srcWidth.
func repackBits[T limb](dst []T, dstWidth uint, src []T, srcWidth uint) {
	var dstMask T
	if dstWidth == limbBits[T]() {
		dstMask = ^T(0)
	} else {
		dstMask = T(1)<<dstWidth - 1
	}

	for i := range dst {
		dst[i] = 0
	}

	end := uint(len(dst)) * dstWidth
	for i, s := range src {
		pos := uint(i) * srcWidth
		for s != 0 && pos < end {
			off := pos % dstWidth
			dst[pos/dstWidth] |= (s << off) & dstMask
			take := dstWidth - off
			s >>= take
			pos += take
		}
	}
}

// scatterParts unpacks the limb array src into half width subparts in dst,
// least significant subpart first. dst needs twice as many elements as src.
func scatterParts[T limb](dst, src []T) {
	repackBits(dst, subpartBits[T](), src, limbBits[T]())
}

// gatherParts reassembles full limbs in dst from the subpart array src,
// inverting scatterParts.
func gatherParts[T limb](dst, src []T) {
	repackBits(dst, limbBits[T](), src, subpartBits[T]())
}
