package attacks

import "math/bits"

// Index space widths per sliding category: the maximum number of relevant
// occupancy bits any square produces on an 8x8 board. A corner rook sees 12
// non-edge squares on its rays, a central bishop 9. The builder panics if a
// mask ever exceeds its width, so these are checked, not assumed.
const (
	RookBits   = 12
	BishopBits = 9
)

// Magic is the per-square descriptor of the slider perfect hash: the
// relevant-occupancy mask, the verified multiplier and the shift extracting
// the top index bits of the product.
type Magic struct {
	Mask  uint64
	Magic uint64
	Shift uint8
}

// Index maps an occupancy to a slot of the square's attack table via
// multiply-shift hashing. Injective over the subsets of Mask, verified at
// build time.
func (m *Magic) Index(occupied uint64) int {
	return int(((occupied & m.Mask) * m.Magic) >> m.Shift)
}

// PextIndex is the drop-in bit-extraction alternative to Index: it packs the
// masked occupancy bits densely into the low bits. Its index assignment
// differs from Index's, but it is injective over the same domain by
// construction. On amd64 hardware this would be a single pext instruction;
// here it is the software equivalent.
func (m *Magic) PextIndex(occupied uint64) int {
	return int(pext(occupied, m.Mask))
}

// pext extracts the bits of x at the set positions of mask, packed into the
// low bits of the result.
func pext(x, mask uint64) uint64 {
	var res, idx uint64
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// pdep deposits the low bits of x into the set positions of mask; the
// inverse of pext. Used to materialize the i-th subset of a mask.
func pdep(x, mask uint64) uint64 {
	var res, idx uint64
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}
