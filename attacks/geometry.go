package attacks

import "fmt"

// Square is a board square in 0..63, rank-major: sq = rank*8 + file, so
// a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int

const SquareNone Square = -1

// Color of the side a pawn belongs to.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// PieceType is a colorless piece kind. Queen attacks are always the union of
// rook and bishop attacks from the same square.
type PieceType uint8

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Directional steps in rank-major square numbering.
const (
	north = 8
	east  = 1
	south = -8
	west  = -1

	northEast = north + east
	southEast = south + east
	southWest = south + west
	northWest = north + west
)

// FileOf returns the file of s in 0..7 (0 = a-file).
func FileOf(s Square) int {
	return int(s) & 7
}

// RankOf returns the rank of s in 0..7 (0 = rank 1).
func RankOf(s Square) int {
	return int(s) >> 3
}

// NewSquare builds a square from file and rank, both 0..7.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// SquareOK reports whether s is on the board.
func SquareOK(s Square) bool {
	return s >= 0 && s < 64
}

// SquareName returns the algebraic name of s, e.g. "e4".
func SquareName(s Square) string {
	return string([]byte{byte('a' + FileOf(s)), byte('1' + RankOf(s))})
}

// ParseSquare parses an algebraic square name like "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return SquareNone, fmt.Errorf("invalid square %q", name)
	}
	return NewSquare(int(name[0]-'a'), int(name[1]-'1')), nil
}

// squareDistance[s1][s2] is the Chebyshev distance between s1 and s2.
var squareDistance [64][64]uint8

func initSquareDistance() {
	for s1 := Square(0); s1 < 64; s1++ {
		for s2 := Square(0); s2 < 64; s2++ {
			fd := FileOf(s1) - FileOf(s2)
			if fd < 0 {
				fd = -fd
			}
			rd := RankOf(s1) - RankOf(s2)
			if rd < 0 {
				rd = -rd
			}
			if fd > rd {
				squareDistance[s1][s2] = uint8(fd)
			} else {
				squareDistance[s1][s2] = uint8(rd)
			}
		}
	}
}

// Distance returns the Chebyshev distance between s1 and s2: the number of
// king moves needed to go from one to the other.
func Distance(s1, s2 Square) int {
	return int(squareDistance[s1][s2])
}

// safeDestination returns the bitboard of the square reached by step from s,
// or 0 if the step leaves the board. The distance bound rejects file
// wraparound: stepping east off the h-file lands two files away on the next
// rank and is dropped.
func safeDestination(s Square, step int) uint64 {
	to := s + Square(step)
	if !SquareOK(to) || Distance(s, to) > 2 {
		return 0
	}
	return SquareBB(to)
}
