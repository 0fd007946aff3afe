package board

import "github.com/rsavchenko/pgnreplay/internal/move"

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// landable reports whether dst is a valid move target: empty for a
// non-capture, or occupied by an opposite-color non-king piece for a
// capture.
func (b *Board) landable(dst move.Square, isWhite, capture bool) bool {
	c := b.At(dst)
	if !capture {
		return c.Piece == move.Empty
	}
	return c.Piece != move.Empty && c.IsWhite != isWhite && c.Piece != move.King
}

// legalPair tests one (src, dst) pair against the per-piece motion
// predicate for d.Piece, already past the pin check. It returns the
// resolved pair (including any en-passant or double-push bookkeeping) and
// whether the pair is legal.
func (b *Board) legalPair(d move.Descriptor, src, dst move.Square) (pair, bool) {
	switch d.Piece {
	case move.Pawn:
		return b.pawnLegal(d, src, dst)
	case move.Knight:
		dRow, dCol := dst.Row-src.Row, dst.Col-src.Col
		shape := (abs(dRow) == 1 && abs(dCol) == 2) || (abs(dRow) == 2 && abs(dCol) == 1)
		if !shape || !b.landable(dst, d.IsWhite, d.Capture) {
			return pair{}, false
		}
		return pair{src: src, dst: dst}, true
	case move.Bishop:
		if !b.diagonalClear(src, dst) || !b.landable(dst, d.IsWhite, d.Capture) {
			return pair{}, false
		}
		return pair{src: src, dst: dst}, true
	case move.Rook:
		if !b.straightClear(src, dst) || !b.landable(dst, d.IsWhite, d.Capture) {
			return pair{}, false
		}
		return pair{src: src, dst: dst}, true
	case move.Queen:
		if !b.diagonalClear(src, dst) && !b.straightClear(src, dst) {
			return pair{}, false
		}
		if !b.landable(dst, d.IsWhite, d.Capture) {
			return pair{}, false
		}
		return pair{src: src, dst: dst}, true
	case move.King:
		dRow, dCol := dst.Row-src.Row, dst.Col-src.Col
		maxAbs := abs(dRow)
		if abs(dCol) > maxAbs {
			maxAbs = abs(dCol)
		}
		if maxAbs != 1 || !b.landable(dst, d.IsWhite, d.Capture) {
			return pair{}, false
		}
		return pair{src: src, dst: dst}, true
	}
	return pair{}, false
}

// straightClear reports whether src and dst share a rank or file (and are
// not identical) with every intermediate square empty.
func (b *Board) straightClear(src, dst move.Square) bool {
	if src == dst {
		return false
	}
	if src.Row != dst.Row && src.Col != dst.Col {
		return false
	}
	return b.pathClear(src, dst)
}

// diagonalClear reports whether src and dst lie on a common diagonal (at
// least one square apart) with every intermediate square empty.
func (b *Board) diagonalClear(src, dst move.Square) bool {
	dRow, dCol := dst.Row-src.Row, dst.Col-src.Col
	if abs(dRow) == 0 || abs(dRow) != abs(dCol) {
		return false
	}
	return b.pathClear(src, dst)
}

// pathClear walks the squares strictly between src and dst, which must
// already be known to lie on a straight line, and reports whether all are
// empty.
func (b *Board) pathClear(src, dst move.Square) bool {
	stepRow := sign(dst.Row - src.Row)
	stepCol := sign(dst.Col - src.Col)
	cur := move.Square{Row: src.Row + stepRow, Col: src.Col + stepCol}
	for cur != dst {
		if b.At(cur).Piece != move.Empty {
			return false
		}
		cur = move.Square{Row: cur.Row + stepRow, Col: cur.Col + stepCol}
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// pawnLegal implements spec.md 4.4's pawn predicate: single and double
// non-capture advances (the latter only from the starting rank, through an
// empty intermediate square), and diagonal captures including en passant
// when the destination is empty but an eligible double_move pawn sits
// beside the source.
func (b *Board) pawnLegal(d move.Descriptor, src, dst move.Square) (pair, bool) {
	forward := -1
	startRow := 6
	if !d.IsWhite {
		forward = 1
		startRow = 1
	}
	dRow, dCol := dst.Row-src.Row, dst.Col-src.Col

	if !d.Capture {
		if dCol != 0 {
			return pair{}, false
		}
		if dRow == forward {
			if b.At(dst).Piece != move.Empty {
				return pair{}, false
			}
			return pair{src: src, dst: dst}, true
		}
		if dRow == 2*forward && src.Row == startRow {
			mid := move.Square{Row: src.Row + forward, Col: src.Col}
			if b.At(mid).Piece != move.Empty || b.At(dst).Piece != move.Empty {
				return pair{}, false
			}
			return pair{src: src, dst: dst, isDoublePush: true}, true
		}
		return pair{}, false
	}

	if abs(dCol) != 1 || dRow != forward {
		return pair{}, false
	}
	destCell := b.At(dst)
	if destCell.Piece != move.Empty {
		if destCell.IsWhite == d.IsWhite || destCell.Piece == move.King {
			return pair{}, false
		}
		return pair{src: src, dst: dst}, true
	}
	epSq := move.Square{Row: src.Row, Col: dst.Col}
	epCell := b.At(epSq)
	if epCell.Piece != move.Pawn || epCell.IsWhite == d.IsWhite || !epCell.DoubleMove {
		return pair{}, false
	}
	return pair{src: src, dst: dst, isEnPassant: true, enPassantPawn: epSq}, true
}
