package attacks

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders b as an 8x8 board diagram with a dot on every set square,
// rank 8 on top. The graphical counterpart of Pretty.
func WriteSVG(w io.Writer, b uint64) {
	const cell = 40
	canvas := svg.New(w)
	canvas.Start(cell*9, cell*9)
	for r := 7; r >= 0; r-- {
		y := (7 - r) * cell
		for f := 0; f < 8; f++ {
			x := f * cell
			fill := "fill:#eeeed2"
			if (f+r)%2 == 0 {
				fill = "fill:#769656"
			}
			canvas.Rect(x, y, cell, cell, fill)
			if b&SquareBB(NewSquare(f, r)) != 0 {
				canvas.Circle(x+cell/2, y+cell/2, cell/3, "fill:#c0392b;fill-opacity:0.85")
			}
		}
		canvas.Text(8*cell+cell/4, y+cell/2+5, string(byte('1'+r)), "font-family:monospace;font-size:16px")
	}
	for f := 0; f < 8; f++ {
		canvas.Text(f*cell+cell/2-4, 8*cell+cell/2, string(byte('a'+f)), "font-family:monospace;font-size:16px")
	}
	canvas.End()
}
