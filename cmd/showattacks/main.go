// showattacks prints the attack bitboard of a piece placed on a square of an
// arbitrary position, as an ASCII grid and optionally as an SVG diagram.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dylhunn/dragontoothmg"

	"chess-attacks/attacks"
)

const startPosFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fen := flag.String("fen", startPosFEN, "FEN position supplying the occupancy")
	sqName := flag.String("square", "e4", "square the piece stands on")
	piece := flag.String("piece", "rook", "piece type: pawn, knight, bishop, rook, queen or king")
	svgPath := flag.String("svg", "", "also write an SVG diagram to this file")
	flag.Parse()

	sq, err := attacks.ParseSquare(*sqName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	board := dragontoothmg.ParseFen(*fen)
	occupied := board.White.All | board.Black.All

	var att uint64
	switch *piece {
	case "pawn":
		// Side to move owns the pawn.
		color := attacks.Black
		if board.Wtomove {
			color = attacks.White
		}
		att = attacks.PawnAttacks(color, sq)
	case "knight":
		att = attacks.Attacks(attacks.Knight, sq, occupied)
	case "bishop":
		att = attacks.Attacks(attacks.Bishop, sq, occupied)
	case "rook":
		att = attacks.Attacks(attacks.Rook, sq, occupied)
	case "queen":
		att = attacks.Attacks(attacks.Queen, sq, occupied)
	case "king":
		att = attacks.Attacks(attacks.King, sq, occupied)
	default:
		fmt.Fprintf(os.Stderr, "unknown -piece %q\n", *piece)
		os.Exit(2)
	}

	fmt.Printf("%s on %s attacks %d squares:\n", *piece, attacks.SquareName(sq), attacks.PopCount(att))
	fmt.Print(attacks.Pretty(att))

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *svgPath, err)
			os.Exit(1)
		}
		attacks.WriteSVG(f, att)
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", *svgPath, err)
			os.Exit(1)
		}
	}
}
