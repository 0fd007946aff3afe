package board

import "github.com/rsavchenko/pgnreplay/internal/move"

// rayDirections indexes the eight compass directions used by isLocked, in
// the rotation order spec.md 4.4 names: 0 up, 1 up-right, 2 right, 3
// down-right, 4 down, 5 down-left, 6 left, 7 up-left. The exact starting
// point and rotation sense are immaterial; only "opposite is (i+4)%8" and
// "diagonal is i odd" need to hold, and they do here.
var rayDirections = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

func (b *Board) findKing(isWhite bool) (move.Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := b.Cells[row][col]
			if c.Piece == move.King && c.IsWhite == isWhite {
				return move.Square{Row: row, Col: col}, true
			}
		}
	}
	return move.Square{}, false
}

// firstPieceAlongRay advances from src in direction dir until it hits a
// piece or runs off the board, returning that piece's square.
func (b *Board) firstPieceAlongRay(src move.Square, dir int) (move.Square, bool) {
	d := rayDirections[dir]
	cur := move.Square{Row: src.Row + d[0], Col: src.Col + d[1]}
	for cur.OnBoard() {
		if b.At(cur).Piece != move.Empty {
			return cur, true
		}
		cur = move.Square{Row: cur.Row + d[0], Col: cur.Col + d[1]}
	}
	return move.Square{}, false
}

// isLocked implements spec.md 4.4's is_locked: moving the piece at src
// away is forbidden if doing so would open a line from the friendly king
// through src to a sliding enemy piece whose geometry matches the ray.
func (b *Board) isLocked(src, dst move.Square, isWhite bool) bool {
	kingSq, ok := b.findKing(isWhite)
	if !ok {
		return false
	}
	for dir := 0; dir < 8; dir++ {
		sq, found := b.firstPieceAlongRay(src, dir)
		if !found || sq != kingSq {
			continue
		}
		opp := (dir + 4) % 8
		return b.attackerBehind(src, opp, dst, isWhite)
	}
	return false
}

// attackerBehind walks from src in direction dir - the ray opposite the
// one that found the friendly king - looking for the piece that would pin
// the mover. If the walk reaches dst first (the mover is capturing the
// piece standing there), it steps one further square to check for a
// second attacker hiding behind the captured piece, per spec.md 9's note
// on this corner case.
func (b *Board) attackerBehind(src move.Square, dir int, dst move.Square, isWhite bool) bool {
	d := rayDirections[dir]
	diagonal := dir%2 == 1
	cur := move.Square{Row: src.Row + d[0], Col: src.Col + d[1]}
	for cur.OnBoard() {
		if cur == dst {
			next := move.Square{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !next.OnBoard() {
				return false
			}
			c := b.At(next)
			if c.Piece == move.Empty {
				return false
			}
			return isPinningAttacker(c, isWhite, diagonal)
		}
		c := b.At(cur)
		if c.Piece != move.Empty {
			return isPinningAttacker(c, isWhite, diagonal)
		}
		cur = move.Square{Row: cur.Row + d[0], Col: cur.Col + d[1]}
	}
	return false
}

// isPinningAttacker reports whether c, sitting at the far end of a clear
// ray through the moving piece's square, can actually attack along that
// ray: a queen always can, a rook only on a straight ray, a bishop only on
// a diagonal one.
func isPinningAttacker(c Cell, friendlyIsWhite bool, diagonal bool) bool {
	if c.Piece == move.Empty || c.IsWhite == friendlyIsWhite {
		return false
	}
	switch c.Piece {
	case move.Queen:
		return true
	case move.Rook:
		return !diagonal
	case move.Bishop:
		return diagonal
	default:
		return false
	}
}
