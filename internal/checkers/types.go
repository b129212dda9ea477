package checkers

import "errors"

// Size is the number of rows and columns on the board.
const Size = 8

var (
	// ErrInvalidCoordinate is returned by HandleClick for a click outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrNoMatchingMove is returned by HandleClick when a selectable cell is
	// clicked during a selection but none of the cached moves lands on it.
	ErrNoMatchingMove = errors.New("no matching move")
)

// Piece is the content of a single board cell.
type Piece int

const (
	Empty Piece = iota
	BlackMan
	BlackKing
	WhiteMan
	WhiteKing
)

var pieceGlyphs = map[Piece]string{
	Empty:     "",
	BlackMan:  "⬤",
	BlackKing: "♚",
	WhiteMan:  "◯",
	WhiteKing: "♔",
}

func (p Piece) String() string {
	return pieceGlyphs[p]
}

func (p Piece) IsKing() bool {
	return p == BlackKing || p == WhiteKing
}

// Owner reports which player the piece belongs to. ok is false for Empty.
func (p Piece) Owner() (player Player, ok bool) {
	switch p {
	case BlackMan, BlackKing:
		return Black, true
	case WhiteMan, WhiteKing:
		return White, true
	default:
		return Black, false
	}
}

// Player is the side to move. Black moves first, towards increasing y.
type Player int

const (
	Black Player = iota
	White
)

func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// Owns reports whether pc is a man or king of this player's color.
func (p Player) Owns(pc Piece) bool {
	owner, ok := pc.Owner()
	return ok && owner == p
}

// factor is the sign of the player's forward vertical direction.
func (p Player) factor() int {
	if p == White {
		return -1
	}
	return 1
}

// Cell is a board coordinate. Row 0 is Black's home row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Cell) offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Move is a legal destination for a selected piece. Captured is nil for a
// single diagonal step and names the jumped cell for a capture.
type Move struct {
	Target   Cell  `json:"target"`
	Captured *Cell `json:"captured,omitempty"`
}

func (m Move) IsCapture() bool {
	return m.Captured != nil
}

func (m Move) clone() Move {
	if m.Captured != nil {
		captured := *m.Captured
		m.Captured = &captured
	}
	return m
}

// CellState is the UI-facing annotation of a cell.
type CellState int

const (
	StateUnselected CellState = iota
	StateSelectable
	StateSelected
)

func (s CellState) String() string {
	switch s {
	case StateSelectable:
		return "selectable"
	case StateSelected:
		return "selected"
	default:
		return "unselected"
	}
}

// PieceCount holds the number of pieces each side has on the board.
type PieceCount struct {
	Black int `json:"black"`
	White int `json:"white"`
}
