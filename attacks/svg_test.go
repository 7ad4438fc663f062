package attacks

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, Attacks(Knight, NewSquare(4, 3), 0))
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an svg document")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("expected 64 board cells, found %d", got)
	}
	// A knight on e4 attacks 8 squares, one dot each.
	if got := strings.Count(out, "<circle"); got != 8 {
		t.Fatalf("expected 8 dots, found %d", got)
	}
}
