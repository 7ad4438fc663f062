package attacks

// Attacks returns the squares attacked by a piece of type pt on s. For
// sliders the occupancy determines where each ray stops, blocker included;
// for knights and kings occupied is ignored. pt must not be Pawn or NoPiece
// (pawn attacks depend on color, see PawnAttacks).
func Attacks(pt PieceType, s Square, occupied uint64) uint64 {
	switch pt {
	case Rook:
		return rookTable[s][rookMagics[s].Index(occupied)]
	case Bishop:
		return bishopTable[s][bishopMagics[s].Index(occupied)]
	case Queen:
		return rookTable[s][rookMagics[s].Index(occupied)] |
			bishopTable[s][bishopMagics[s].Index(occupied)]
	default:
		return pseudoAttacks[pt][s]
	}
}

// PawnAttacks returns the two (or one, on the rim) capture squares of a pawn
// of color c on s.
func PawnAttacks(c Color, s Square) uint64 {
	return pawnAttacksTable[c][s]
}

// Line returns the full rank, file or diagonal through s1 and s2, both
// included, or 0 if the squares do not share one.
func Line(s1, s2 Square) uint64 {
	return lineBB[s1][s2]
}

// Between returns the squares strictly between s1 and s2 when they share a
// rank, file or diagonal, plus s2 itself in every case. The unconditional
// s2 is deliberate: it lets callers ask "is x on the path from s1 to s2,
// destination included" without first checking alignment.
func Between(s1, s2 Square) uint64 {
	return betweenBB[s1][s2]
}

// Aligned reports whether s3 lies on the line through s1 and s2.
func Aligned(s1, s2, s3 Square) bool {
	return lineBB[s1][s2]&SquareBB(s3) != 0
}
