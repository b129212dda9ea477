package checkers

// Board is an 8x8 grid of pieces indexed as [y][x]. It is a value type:
// assigning or passing a Board copies it, so snapshots never alias.
type Board [Size][Size]Piece

// InitialBoard returns the standard starting layout: Black men on rows 0-2
// and White men on rows 5-7, on the cells where x+y is even.
func InitialBoard() Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b[y][x] = startPiece(x, y)
		}
	}
	return b
}

func startPiece(x, y int) Piece {
	if y == 3 || y == 4 || (x+y)%2 != 0 {
		return Empty
	}
	if y < 3 {
		return BlackMan
	}
	return WhiteMan
}

// At returns the piece at (x, y). Out-of-range coordinates read as Empty.
func (b Board) At(x, y int) Piece {
	if !(Cell{X: x, Y: y}).InBounds() {
		return Empty
	}
	return b[y][x]
}

// Set places p at (x, y). Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int, p Piece) {
	if !(Cell{X: x, Y: y}).InBounds() {
		return
	}
	b[y][x] = p
}

func (b Board) at(c Cell) Piece {
	return b.At(c.X, c.Y)
}

// Count returns the number of pieces, men and kings, held by each side.
func (b Board) Count() PieceCount {
	var count PieceCount
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			owner, ok := b[y][x].Owner()
			if !ok {
				continue
			}
			if owner == Black {
				count.Black++
			} else {
				count.White++
			}
		}
	}
	return count
}
