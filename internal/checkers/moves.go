package checkers

type candidate struct {
	dx, dy  int
	capture bool
	// offset of the jumped cell, relative to the origin
	cx, cy int
}

func candidates(player Player, king bool) []candidate {
	f := player.factor()
	forward := []candidate{
		{dx: -f, dy: f},
		{dx: f, dy: f},
		{dx: -2 * f, dy: 2 * f, capture: true, cx: -f, cy: f},
		{dx: 2 * f, dy: 2 * f, capture: true, cx: f, cy: f},
	}
	if !king {
		return forward
	}
	all := forward
	for _, c := range forward {
		all = append(all, candidate{dx: -c.dx, dy: -c.dy, capture: c.capture, cx: -c.cx, cy: -c.cy})
	}
	return all
}

// GenerateMoves returns the legal destinations for the piece at (x, y) when
// player is to move. Men step or jump diagonally forward; kings of the
// player's color also move backward. A jump is offered only over an
// opposing piece. Moves are returned in candidate order: short left, short
// right, long left, long right, then the same four mirrored for kings.
//
// Captures are not preferred over single steps and jumps never chain.
func GenerateMoves(board Board, player Player, x, y int) []Move {
	origin := Cell{X: x, Y: y}
	if !origin.InBounds() {
		return nil
	}
	piece := board.at(origin)
	king := piece.IsKing() && player.Owns(piece)

	var moves []Move
	for _, c := range candidates(player, king) {
		target := origin.offset(c.dx, c.dy)
		if !target.InBounds() || board.at(target) != Empty {
			continue
		}
		if !c.capture {
			moves = append(moves, Move{Target: target})
			continue
		}
		jumped := origin.offset(c.cx, c.cy)
		if player.Opponent().Owns(board.at(jumped)) {
			moves = append(moves, Move{Target: target, Captured: &jumped})
		}
	}
	return moves
}
