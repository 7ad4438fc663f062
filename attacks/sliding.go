package attacks

var (
	rookDirections   = [4]int{north, south, east, west}
	bishopDirections = [4]int{northEast, southEast, southWest, northWest}
)

// SlidingAttacks walks the four rays of a rook or bishop from s one step at a
// time, stopping at the board edge or at (and including) the first occupied
// square. It is the ground-truth oracle the attack tables are built from and
// verified against; queries after init should go through Attacks instead.
func SlidingAttacks(pt PieceType, s Square, occupied uint64) uint64 {
	dirs := &rookDirections
	if pt == Bishop {
		dirs = &bishopDirections
	}
	var att uint64
	for _, d := range dirs {
		to := s
		for safeDestination(to, d) != 0 {
			to += Square(d)
			att |= SquareBB(to)
			if occupied&SquareBB(to) != 0 {
				break
			}
		}
	}
	return att
}

// edges returns the edge squares that cannot affect a slider on s: the first
// and last ranks unless s is on them, and likewise the a- and h-files.
func edges(s Square) uint64 {
	return ((Rank1BB | Rank8BB) &^ RankBB(s)) | ((FileABB | FileHBB) &^ FileBB(s))
}
