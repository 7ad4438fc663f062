package attacks

import "fmt"

var (
	rookMagics   [64]Magic
	bishopMagics [64]Magic

	// Attack tables, one slice of 1<<RookBits / 1<<BishopBits entries per
	// square, indexed by Magic.Index. Written only by initSliderTable.
	rookTable   [64][]uint64
	bishopTable [64][]uint64

	// Attack sets on an otherwise empty board, indexed by piece type.
	pseudoAttacks [King + 1][64]uint64

	pawnAttacksTable [2][64]uint64

	// lineBB[s1][s2] is the full rank, file or diagonal through both squares
	// when they are aligned, zero otherwise. betweenBB[s1][s2] holds the
	// squares strictly between aligned squares, and always includes s2
	// itself whether or not the squares align: callers get an inclusive
	// "is x on the path to s2" test with no separate alignment check.
	lineBB    [64][64]uint64
	betweenBB [64][64]uint64
)

func init() {
	initPopCnt16()
	initSquareDistance()
	initSliderTable(Rook, &rookMagicNumbers, &rookMagics, RookBits, &rookTable)
	initSliderTable(Bishop, &bishopMagicNumbers, &bishopMagics, BishopBits, &bishopTable)
	initPseudoAttacks()
}

// initSliderTable fills one category's magic descriptors and attack table.
// Subsets of each square's mask are enumerated with the Carry-Rippler
// recurrence, which visits every subset exactly once starting and ending at
// the empty set. A slot written twice means the embedded multiplier is not a
// perfect hash for this geometry; that is a construction defect, so it
// aborts rather than leaving a silently corrupt table.
func initSliderTable(pt PieceType, numbers *[64]uint64, magics *[64]Magic, tableBits int, table *[64][]uint64) {
	for s := Square(0); s < 64; s++ {
		m := &magics[s]
		m.Mask = SlidingAttacks(pt, s, 0) &^ edges(s)
		m.Magic = numbers[s]
		m.Shift = uint8(64 - tableBits)
		if n := PopCount(m.Mask); n > tableBits {
			panic(fmt.Sprintf("attacks: mask of %s on %s has %d bits, table width is %d",
				pieceName(pt), SquareName(s), n, tableBits))
		}

		table[s] = make([]uint64, 1<<tableBits)
		seen := make([]bool, 1<<tableBits)
		occ := uint64(0)
		for {
			idx := m.Index(occ)
			if seen[idx] {
				panic(fmt.Sprintf("attacks: magic collision for %s on %s at index %d",
					pieceName(pt), SquareName(s), idx))
			}
			seen[idx] = true
			table[s][idx] = SlidingAttacks(pt, s, occ)

			occ = (occ - m.Mask) & m.Mask
			if occ == 0 {
				break
			}
		}
	}
}

var (
	kingSteps   = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}
	knightSteps = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
)

func initPseudoAttacks() {
	for s1 := Square(0); s1 < 64; s1++ {
		pawnAttacksTable[White][s1] = PawnAttacksBB(White, SquareBB(s1))
		pawnAttacksTable[Black][s1] = PawnAttacksBB(Black, SquareBB(s1))

		for _, step := range kingSteps {
			pseudoAttacks[King][s1] |= safeDestination(s1, step)
		}
		for _, step := range knightSteps {
			pseudoAttacks[Knight][s1] |= safeDestination(s1, step)
		}

		pseudoAttacks[Bishop][s1] = Attacks(Bishop, s1, 0)
		pseudoAttacks[Rook][s1] = Attacks(Rook, s1, 0)
		pseudoAttacks[Queen][s1] = pseudoAttacks[Bishop][s1] | pseudoAttacks[Rook][s1]

		for _, pt := range [2]PieceType{Bishop, Rook} {
			for s2 := Square(0); s2 < 64; s2++ {
				if pseudoAttacks[pt][s1]&SquareBB(s2) != 0 {
					lineBB[s1][s2] = (Attacks(pt, s1, 0) & Attacks(pt, s2, 0)) |
						SquareBB(s1) | SquareBB(s2)
					betweenBB[s1][s2] = Attacks(pt, s1, SquareBB(s2)) &
						Attacks(pt, s2, SquareBB(s1))
				}
				betweenBB[s1][s2] |= SquareBB(s2)
			}
		}
	}
}

// PawnAttacksBB returns the squares attacked by every pawn of color c on b.
func PawnAttacksBB(c Color, b uint64) uint64 {
	if c == White {
		return ((b &^ FileHBB) << 9) | ((b &^ FileABB) << 7)
	}
	return ((b &^ FileABB) >> 9) | ((b &^ FileHBB) >> 7)
}

func pieceName(pt PieceType) string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}
