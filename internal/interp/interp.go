// Package interp implements the move interpreter from spec.md section 4.3:
// it takes the textual symbol of a half-move and the side-to-move flag and
// produces a move.Descriptor. Parsing scans the text right-to-left; the
// interpreter never looks at the board - ambiguity is left for the board
// engine to resolve against live position.
package interp

import (
	pgnerrors "github.com/rsavchenko/pgnreplay/internal/errors"
	"github.com/rsavchenko/pgnreplay/internal/move"
)

// Interpret parses the SAN text of a single half-move for the given side
// to move and returns the resulting descriptor.
func Interpret(text string, isWhite bool) (move.Descriptor, error) {
	switch text {
	case "e", "p":
		return move.Descriptor{Kind: move.KindIgnore}, nil
	case "O-O":
		return move.Descriptor{Kind: move.KindKingSideCastle, CastleIsWhite: isWhite}, nil
	case "O-O-O":
		return move.Descriptor{Kind: move.KindQueenSideCastle, CastleIsWhite: isWhite}, nil
	case "1-0":
		return move.Descriptor{Kind: move.KindFinish, Marker: move.WhiteWon}, nil
	case "0-1":
		return move.Descriptor{Kind: move.KindFinish, Marker: move.BlackWon}, nil
	case "1/2-1/2":
		return move.Descriptor{Kind: move.KindFinish, Marker: move.Draw}, nil
	}
	return parseNextMove(text, isWhite)
}

// scanner walks text from right to left, one byte at a time.
type scanner struct {
	text string
	pos  int // index one past the next unconsumed character, from the left
}

func newScanner(text string) *scanner {
	return &scanner{text: text, pos: len(text)}
}

// empty reports whether every character has been consumed.
func (s *scanner) empty() bool { return s.pos == 0 }

// peek returns the rightmost unconsumed character, or 0 if empty.
func (s *scanner) peek() byte {
	if s.empty() {
		return 0
	}
	return s.text[s.pos-1]
}

// take consumes and returns the rightmost unconsumed character.
func (s *scanner) take() byte {
	ch := s.peek()
	s.pos--
	return ch
}

func isRankDigit(ch byte) bool { return ch >= '1' && ch <= '8' }
func isFileLetter(ch byte) bool { return ch >= 'a' && ch <= 'h' }

// rankToRow maps a rank digit to the row index (rank 8 -> row 0).
func rankToRow(d byte) int { return '8' - int(d) }

// fileToCol maps a file letter to the column index (file a -> col 0).
func fileToCol(l byte) int { return int(l) - 'a' }

// parseCoordinate parses an optional (rank, file) pair from the scanner,
// matching spec.md 4.3 steps (d) and (g): rank first since scanning is
// right-to-left, then file.
func parseCoordinate(s *scanner) move.SrcHint {
	hint := move.SrcHint{Row: move.Unset, Col: move.Unset}
	if !s.empty() && isRankDigit(s.peek()) {
		hint.Row = rankToRow(s.take())
	}
	if !s.empty() && isFileLetter(s.peek()) {
		hint.Col = fileToCol(s.take())
	}
	return hint
}

func interpErr(text, detail string) error {
	return &pgnerrors.SessionError{Err: pgnerrors.ErrInterpretation, MoveText: text + ": " + detail}
}

func parseNextMove(text string, isWhite bool) (move.Descriptor, error) {
	s := newScanner(text)
	d := move.Descriptor{
		Kind:         move.KindNextMove,
		IsWhite:      isWhite,
		SrcHint:      move.SrcHint{Row: move.Unset, Col: move.Unset},
		PromotePiece: move.Empty,
	}

	// (a) up to two suffix flag characters: # + :
	for i := 0; i < 2 && !s.empty(); i++ {
		switch s.peek() {
		case '#':
			d.Checkmate = true
			s.take()
		case '+':
			d.Check = true
			s.take()
		case ':':
			d.Capture = true
			s.take()
		default:
			i = 2 // stop at first non-flag
		}
	}

	// (b) optional ')' closing the alternate promotion bracket.
	if !s.empty() && s.peek() == ')' {
		s.take()
	}

	// (c) optional promotion piece letter, then optional separator.
	if !s.empty() {
		if p, ok := move.PieceFromLetter(s.peek()); ok {
			d.PromotePiece = p
			s.take()
			if !s.empty() {
				switch s.peek() {
				case '=', '/', '(':
					s.take()
				}
			}
		}
	}

	// (d) destination: rank then file, right-to-left. Either or both
	// components may be absent; at least one must appear.
	d.Dst = parseCoordinate(s)
	if !d.Dst.HasRow() && !d.Dst.HasCol() {
		return move.Descriptor{}, interpErr(text, "missing destination square")
	}

	// (e) no more characters: implicit pawn move, done.
	if s.empty() {
		d.Piece = move.Pawn
		return d, nil
	}

	// (f) a single 'x' or ':' sets capture.
	if s.peek() == 'x' || s.peek() == ':' {
		d.Capture = true
		s.take()
	}

	// (g) source hint, parsed identically to destination.
	d.SrcHint = parseCoordinate(s)

	// (h) one more optional piece letter; leftover is a hard error.
	if !s.empty() {
		if p, ok := move.PieceFromLetter(s.peek()); ok {
			d.Piece = p
			s.take()
		} else {
			return move.Descriptor{}, interpErr(text, "unknown piece letter")
		}
	} else {
		d.Piece = move.Pawn
	}

	if !s.empty() {
		return move.Descriptor{}, interpErr(text, "unexpected leading characters")
	}

	return d, nil
}
