// Package display draws a checkers game as text. It only decides the order
// rows are printed in; the coordinates it labels are always the engine's.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/justinabrahms/checkers/internal/checkers"
	"github.com/mattn/go-runewidth"
)

type Options struct {
	// BlackAtBottom prints row 7 first.
	BlackAtBottom   bool
	ShowAnnotations bool
	// WideAmbiguous measures ambiguous-width glyphs such as ◯ as two
	// columns, as East Asian terminals draw them.
	WideAmbiguous   bool
}

// RowOrder returns the y coordinates in the order they are printed.
func RowOrder(blackAtBottom bool) []int {
	rows := make([]int, checkers.Size)
	for i := range rows {
		if blackAtBottom {
			rows[i] = checkers.Size - 1 - i
		} else {
			rows[i] = i
		}
	}
	return rows
}

var glyphPieces = []checkers.Piece{
	checkers.BlackMan,
	checkers.BlackKing,
	checkers.WhiteMan,
	checkers.WhiteKing,
}

type renderer struct {
	cond *runewidth.Condition
	// width of the widest piece glyph; every cell pads its glyph to it
	glyphWidth int
}

func newRenderer(wideAmbiguous bool) renderer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = wideAmbiguous
	width := 1
	for _, p := range glyphPieces {
		if w := cond.StringWidth(p.String()); w > width {
			width = w
		}
	}
	return renderer{cond: cond, glyphWidth: width}
}

// Render writes the board, the column labels and the status line to w.
func Render(w io.Writer, state checkers.GameState, opts Options) error {
	var sb strings.Builder
	r := newRenderer(opts.WideAmbiguous)
	board := state.Board()
	annotation := state.Annotation()

	for _, y := range RowOrder(opts.BlackAtBottom) {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < checkers.Size; x++ {
			var s checkers.CellState
			if opts.ShowAnnotations {
				s = annotation.At(x, y)
			}
			sb.WriteString(r.cell(board.At(x, y), s, (x+y)%2 == 0))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for x := 0; x < checkers.Size; x++ {
		sb.WriteString(r.cond.FillRight(fmt.Sprintf(" %d", x), r.glyphWidth+2))
	}
	sb.WriteByte('\n')

	count := board.Count()
	fmt.Fprintf(&sb, "Next player: %s  (Black %d, White %d)\n", state.NextPlayer(), count.Black, count.White)

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell renders one square as a glyph padded to glyphWidth between two
// marker characters, so every cell has the same display width.
func (r renderer) cell(p checkers.Piece, s checkers.CellState, playable bool) string {
	glyph := p.String()
	if glyph == "" {
		glyph = " "
		if playable {
			glyph = "."
		}
	}
	left, right := " ", " "
	switch s {
	case checkers.StateSelected:
		left, right = "[", "]"
	case checkers.StateSelectable:
		if p == checkers.Empty {
			glyph = "*"
		}
		left, right = "<", ">"
	}
	return left + r.cond.FillRight(glyph, r.glyphWidth) + right
}
