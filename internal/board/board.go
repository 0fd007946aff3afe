// Package board implements the move interpreter's disambiguation and the
// board engine from spec.md section 4.4: an 8x8 grid of cells, candidate
// enumeration for partially-hinted moves, per-piece motion predicates, pin
// detection, and move application including castling and en passant.
package board

import (
	pgnerrors "github.com/rsavchenko/pgnreplay/internal/errors"
	"github.com/rsavchenko/pgnreplay/internal/move"
)

// Cell is a single board square: a piece identity, its color (meaningful
// only when Piece != move.Empty), and the en-passant double_move flag.
type Cell struct {
	Piece      move.Piece
	IsWhite    bool
	DoubleMove bool
}

// Board is the 64-cell grid mutated exclusively by Apply. Row 0 is rank 8,
// row 7 is rank 1; column 0 is file a, column 7 is file h.
type Board struct {
	Cells [8][8]Cell
}

var backRank = [8]move.Piece{
	move.Rook, move.Knight, move.Bishop, move.Queen,
	move.King, move.Bishop, move.Knight, move.Rook,
}

// NewBoard returns a board set to the standard chess starting position.
func NewBoard() *Board {
	b := &Board{}
	for col := 0; col < 8; col++ {
		b.Cells[0][col] = Cell{Piece: backRank[col], IsWhite: false}
		b.Cells[1][col] = Cell{Piece: move.Pawn, IsWhite: false}
		b.Cells[6][col] = Cell{Piece: move.Pawn, IsWhite: true}
		b.Cells[7][col] = Cell{Piece: backRank[col], IsWhite: true}
	}
	return b
}

// At returns the cell at sq. Callers must only pass on-board squares.
func (b *Board) At(sq move.Square) Cell {
	return b.Cells[sq.Row][sq.Col]
}

func (b *Board) set(sq move.Square, c Cell) {
	b.Cells[sq.Row][sq.Col] = c
}

func boardErr(detail string) error {
	return &pgnerrors.SessionError{Err: pgnerrors.ErrBoard, MoveText: detail}
}

func ambiguousErr(detail string) error {
	return &pgnerrors.SessionError{Err: pgnerrors.ErrAmbiguous, MoveText: detail}
}

func invariantErr(detail string) error {
	return &pgnerrors.SessionError{Err: pgnerrors.ErrInvariant, MoveText: detail}
}

// Apply mutates the board according to d, the only entry point that may
// change board state. It returns a board error for an unresolvable or
// over-resolved NextMove, or a malformed castle.
func (b *Board) Apply(d move.Descriptor) error {
	switch d.Kind {
	case move.KindNextMove:
		return b.applyNextMove(d)
	case move.KindKingSideCastle:
		return b.applyCastle(d.CastleIsWhite, true)
	case move.KindQueenSideCastle:
		return b.applyCastle(d.CastleIsWhite, false)
	case move.KindFinish, move.KindIgnore:
		return nil
	default:
		return invariantErr("unrecognized descriptor kind")
	}
}

// pair is one candidate (source, destination) square combination under
// consideration for a NextMove descriptor.
type pair struct {
	src, dst      move.Square
	enPassantPawn move.Square
	isEnPassant   bool
	isDoublePush  bool
}

func (b *Board) applyNextMove(d move.Descriptor) error {
	srcs := b.sourceCandidates(d)
	dsts := b.destinationCandidates(d)

	var legal []pair
	for _, src := range srcs {
		for _, dst := range dsts {
			if src == dst {
				continue
			}
			if b.isLocked(src, dst, d.IsWhite) {
				continue
			}
			p, ok := b.legalPair(d, src, dst)
			if !ok {
				continue
			}
			legal = append(legal, p)
		}
	}

	switch len(legal) {
	case 0:
		return ambiguousErr("no legal resolution for move")
	case 1:
		b.applyPair(d, legal[0])
		return nil
	default:
		return ambiguousErr("multiple legal resolutions")
	}
}

// sourceCandidates enumerates squares per spec.md 4.4: a fully-known hint
// names one square; a partial hint scans the named file or rank; an empty
// hint scans the whole board. Only cells holding the moving piece and color
// are returned.
func (b *Board) sourceCandidates(d move.Descriptor) []move.Square {
	h := d.SrcHint
	matches := func(sq move.Square) bool {
		c := b.At(sq)
		return c.Piece == d.Piece && c.IsWhite == d.IsWhite
	}
	if h.HasRow() && h.HasCol() {
		sq := move.Square{Row: h.Row, Col: h.Col}
		if matches(sq) {
			return []move.Square{sq}
		}
		return nil
	}
	var out []move.Square
	if h.HasCol() {
		for row := 0; row < 8; row++ {
			sq := move.Square{Row: row, Col: h.Col}
			if matches(sq) {
				out = append(out, sq)
			}
		}
		return out
	}
	if h.HasRow() {
		for col := 0; col < 8; col++ {
			sq := move.Square{Row: h.Row, Col: col}
			if matches(sq) {
				out = append(out, sq)
			}
		}
		return out
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := move.Square{Row: row, Col: col}
			if matches(sq) {
				out = append(out, sq)
			}
		}
	}
	return out
}

// destinationCandidates mirrors sourceCandidates for the destination hint,
// restricting to squares that are a valid landing: empty for a non-capture,
// or any square when capture is set (occupied, or empty for en passant; the
// occupant and the en passant pawn are checked later).
func (b *Board) destinationCandidates(d move.Descriptor) []move.Square {
	h := d.Dst
	landable := func(sq move.Square) bool {
		occupied := b.At(sq).Piece != move.Empty
		if d.Capture {
			return true // occupied or the en passant empty-square case
		}
		return !occupied
	}
	if h.HasRow() && h.HasCol() {
		sq := move.Square{Row: h.Row, Col: h.Col}
		if landable(sq) {
			return []move.Square{sq}
		}
		return nil
	}
	var out []move.Square
	if h.HasCol() {
		for row := 0; row < 8; row++ {
			sq := move.Square{Row: row, Col: h.Col}
			if landable(sq) {
				out = append(out, sq)
			}
		}
		return out
	}
	if h.HasRow() {
		for col := 0; col < 8; col++ {
			sq := move.Square{Row: h.Row, Col: col}
			if landable(sq) {
				out = append(out, sq)
			}
		}
		return out
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := move.Square{Row: row, Col: col}
			if landable(sq) {
				out = append(out, sq)
			}
		}
	}
	return out
}

// clearDoubleMove drops the double_move flag from every cell. En passant
// eligibility only survives one ply; the per-cell clearing spec.md 4.4
// describes (cleared on that cell's own next motion) would let two flags
// coexist after consecutive double pushes by opposite colors, violating
// the at-most-one invariant spec.md section 8 tests for. Expiring the
// flag globally on every applied move, rather than only on the moved
// cell, is the fix.
func (b *Board) clearDoubleMove() {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b.Cells[row][col].DoubleMove = false
		}
	}
}

// applyPair commits a resolved pair to the board: the destination cell
// gets the moving (or promoted) piece, the source is cleared, and the
// double_move flag is set only for the pair actually applied, never during
// candidate evaluation - the source's resolution of spec.md 9's first
// flagged ambiguity.
func (b *Board) applyPair(d move.Descriptor, p pair) {
	piece := d.Piece
	if d.PromotePiece != move.Empty {
		piece = d.PromotePiece
	}
	if p.isEnPassant {
		b.set(p.enPassantPawn, Cell{})
	}
	b.clearDoubleMove()
	b.set(p.dst, Cell{Piece: piece, IsWhite: d.IsWhite, DoubleMove: p.isDoublePush})
	b.set(p.src, Cell{})
}

func (b *Board) applyCastle(isWhite, kingSide bool) error {
	row := 7
	if !isWhite {
		row = 0
	}
	kingFrom := move.Square{Row: row, Col: 4}
	var kingTo, rookFrom, rookTo move.Square
	var between []move.Square
	if kingSide {
		rookFrom = move.Square{Row: row, Col: 7}
		kingTo = move.Square{Row: row, Col: 6}
		rookTo = move.Square{Row: row, Col: 5}
		between = []move.Square{{Row: row, Col: 5}, {Row: row, Col: 6}}
	} else {
		rookFrom = move.Square{Row: row, Col: 0}
		kingTo = move.Square{Row: row, Col: 2}
		rookTo = move.Square{Row: row, Col: 3}
		between = []move.Square{{Row: row, Col: 1}, {Row: row, Col: 2}, {Row: row, Col: 3}}
	}
	for _, sq := range between {
		if b.At(sq).Piece != move.Empty {
			return boardErr("castling through a non-empty square")
		}
	}
	king := b.At(kingFrom)
	rook := b.At(rookFrom)
	b.clearDoubleMove()
	b.set(kingFrom, Cell{})
	b.set(rookFrom, Cell{})
	b.set(kingTo, Cell{Piece: king.Piece, IsWhite: king.IsWhite})
	b.set(rookTo, Cell{Piece: rook.Piece, IsWhite: rook.IsWhite})
	return nil
}
