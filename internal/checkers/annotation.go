package checkers

// Annotation marks every cell as unselected, selectable or selected for the
// presentation layer. It is derived from the board and never authoritative.
type Annotation [Size][Size]CellState

// At returns the state of (x, y). Out-of-range coordinates read as StateUnselected.
func (a Annotation) At(x, y int) CellState {
	if !(Cell{X: x, Y: y}).InBounds() {
		return StateUnselected
	}
	return a[y][x]
}

func (a *Annotation) set(c Cell, s CellState) {
	a[c.Y][c.X] = s
}

// ComputeAnnotation derives the annotation grid from scratch.
//
// With no selection, every piece of player that has at least one legal move
// is marked selectable and anyMoveFound reports whether there was such a piece.
// With a selection, the selected cell is marked selected, each of its destinations
// is selectable and anyMoveFound is always true.
func ComputeAnnotation(board Board, player Player, selection Selection) (grid Annotation, anyMoveFound bool) {
	if sel, ok := selection.(Selected); ok {
		grid.set(sel.Cell, StateSelected)
		for _, m := range GenerateMoves(board, player, sel.Cell.X, sel.Cell.Y) {
			grid.set(m.Target, StateSelectable)
		}
		return grid, true
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !player.Owns(board[y][x]) {
				continue
			}
			if len(GenerateMoves(board, player, x, y)) > 0 {
				grid[y][x] = StateSelectable
				anyMoveFound = true
			}
		}
	}
	return grid, anyMoveFound
}
