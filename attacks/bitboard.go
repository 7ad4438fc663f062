// Package attacks precomputes the attack bitboards of every piece type from
// every square, using fancy magic bitboards for the sliders, plus the
// geometric relation tables (line, between, distance) derived from them.
// All tables are built once at package init and are read-only afterwards, so
// any number of goroutines may query them concurrently without locking.
package attacks

import (
	"math/bits"
	"strings"
)

// File masks, a-file through h-file.
const (
	FileABB uint64 = 0x0101010101010101 << iota
	FileBBB
	FileCBB
	FileDBB
	FileEBB
	FileFBB
	FileGBB
	FileHBB
)

// Rank masks, rank 1 through rank 8.
const (
	Rank1BB uint64 = 0xFF << (8 * iota)
	Rank2BB
	Rank3BB
	Rank4BB
	Rank5BB
	Rank6BB
	Rank7BB
	Rank8BB
)

// SquareBB returns the bitboard with only s set.
func SquareBB(s Square) uint64 {
	return 1 << uint(s)
}

// FileBB returns the mask of the file holding s.
func FileBB(s Square) uint64 {
	return FileABB << uint(FileOf(s))
}

// RankBB returns the mask of the rank holding s.
func RankBB(s Square) uint64 {
	return Rank1BB << uint(8*RankOf(s))
}

// MoreThanOne reports whether b has at least two bits set.
func MoreThanOne(b uint64) bool {
	return b&(b-1) != 0
}

// Lsb returns the lowest set square of b. b must be non-zero.
func Lsb(b uint64) Square {
	return Square(bits.TrailingZeros64(b))
}

// PopLsb clears and returns the lowest set square of b.
func PopLsb(b *uint64) Square {
	s := Lsb(*b)
	*b &= *b - 1
	return s
}

// popCnt16 holds the number of set bits of every 16-bit value. It backs
// PopCount on targets without a usable popcount instruction and keeps the
// table-assembly path exercised everywhere else.
var popCnt16 [1 << 16]uint8

func initPopCnt16() {
	for i := range popCnt16 {
		v := uint16(i)
		var n uint8
		for v != 0 {
			v &= v - 1
			n++
		}
		popCnt16[i] = n
	}
}

// PopCount returns the number of set bits of b, assembled from four 16-bit
// table lookups.
func PopCount(b uint64) int {
	return int(popCnt16[b&0xFFFF]) +
		int(popCnt16[(b>>16)&0xFFFF]) +
		int(popCnt16[(b>>32)&0xFFFF]) +
		int(popCnt16[b>>48])
}

// Pretty renders b as an 8x8 ASCII grid with rank and file labels, rank 8 on
// top. Debugging aid only.
func Pretty(b uint64) string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			if b&SquareBB(NewSquare(f, r)) != 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("| ")
		sb.WriteByte(byte('1' + r))
		sb.WriteString("\n+---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}
