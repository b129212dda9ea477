package checkers

import "fmt"

// Selection is either Idle or Selected. The selected cell and the moves
// cached for it travel together so they cannot drift apart.
type Selection interface {
	isSelection()
}

// Idle means no piece is selected.
type Idle struct{}

// Selected holds the selected piece and the moves generated for it at the
// time of selection.
type Selected struct {
	Cell  Cell
	Moves []Move
}

func (Idle) isSelection()     {}
func (Selected) isSelection() {}

// GameState is an immutable snapshot of a game. New states are produced by
// HandleClick; older states stay valid and never share a board.
type GameState struct {
	board        Board
	player       Player
	selection    Selection
	annotation   Annotation
	anyMoveFound bool
}

// InitialState returns the standard layout with Black to move and nothing
// selected.
func InitialState() GameState {
	return newState(InitialBoard(), Black, Idle{})
}

// NewState builds a state from an arbitrary position with nothing selected.
func NewState(board Board, player Player) GameState {
	return newState(board, player, Idle{})
}

func newState(board Board, player Player, selection Selection) GameState {
	annotation, found := ComputeAnnotation(board, player, selection)
	return GameState{
		board:        board,
		player:       player,
		selection:    selection,
		annotation:   annotation,
		anyMoveFound: found,
	}
}

func (s GameState) Board() Board {
	return s.board
}

func (s GameState) Annotation() Annotation {
	return s.annotation
}

func (s GameState) NextPlayer() Player {
	return s.player
}

// Selection returns the current selection. A Selected value carries its own
// copy of the cached moves.
func (s GameState) Selection() Selection {
	sel, ok := s.selection.(Selected)
	if !ok {
		return Idle{}
	}
	return Selected{Cell: sel.Cell, Moves: cloneMoves(sel.Moves)}
}

// Moves returns a copy of the moves cached for the current selection, or nil
// when Idle.
func (s GameState) Moves() []Move {
	if sel, ok := s.selection.(Selected); ok {
		return cloneMoves(sel.Moves)
	}
	return nil
}

func cloneMoves(moves []Move) []Move {
	if moves == nil {
		return nil
	}
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = m.clone()
	}
	return out
}

// AnyMoveFound reports whether the last annotation pass found a legal move.
// Nothing ends the game on it.
func (s GameState) AnyMoveFound() bool {
	return s.anyMoveFound
}

// HandleClick applies a click at (x, y) and returns the next state.
//
// Clicking an unselected cell does nothing. Clicking the selected piece
// deselects it. Clicking a selectable piece while idle selects it, and
// clicking a selectable destination while a piece is selected plays that
// move and passes the turn. On error the input state is returned unchanged.
func HandleClick(state GameState, x, y int) (GameState, error) {
	if !(Cell{X: x, Y: y}).InBounds() {
		return state, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, x, y)
	}

	switch state.annotation.At(x, y) {
	case StateUnselected:
		return state, nil
	case StateSelected:
		return newState(state.board, state.player, Idle{}), nil
	}

	sel, ok := state.selection.(Selected)
	if !ok {
		moves := GenerateMoves(state.board, state.player, x, y)
		return newState(state.board, state.player, Selected{Cell: Cell{X: x, Y: y}, Moves: moves}), nil
	}

	for _, m := range sel.Moves {
		if m.Target.X == x && m.Target.Y == y {
			board, player, selection := ExecuteMove(state.board, sel.Cell, m, state.player)
			return newState(board, player, selection), nil
		}
	}
	return state, fmt.Errorf("%w: (%d, %d) from (%d, %d)", ErrNoMatchingMove, x, y, sel.Cell.X, sel.Cell.Y)
}

// ExecuteMove plays m for the piece at origin and returns the new board, the
// next player and a cleared selection. The move is not re-validated. The
// turn always passes to the opponent, whether or not a piece was captured.
func ExecuteMove(board Board, origin Cell, m Move, player Player) (Board, Player, Selection) {
	next := board
	next.Set(m.Target.X, m.Target.Y, board.at(origin))
	next.Set(origin.X, origin.Y, Empty)
	if m.Captured != nil {
		next.Set(m.Captured.X, m.Captured.Y, Empty)
	}
	return next, player.Opponent(), Idle{}
}
