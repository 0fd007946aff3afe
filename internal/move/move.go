// Package move holds the shared data model that flows between the grammar
// driver, the move interpreter, and the board engine: square coordinates,
// piece identity, and the move descriptor tagged union. None of these types
// carry board-state or scanning behavior - they are pure values passed by
// copy along the pipeline described in the package layout's design notes.
package move

// Piece identifies a chess piece type, independent of colour. Zero value
// Empty marks "no piece" (used for promotion fields on non-promoting moves
// and for unoccupied cells).
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Letter returns the uppercase SAN letter for the piece, or a space for Empty.
func (p Piece) Letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return ' '
	}
}

// PieceFromLetter maps an uppercase SAN piece letter to a Piece. Returns
// (Empty, false) if the letter does not name a piece.
func PieceFromLetter(l byte) (Piece, bool) {
	switch l {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return Empty, false
	}
}

// Unset marks an absent row or column component of a SrcHint scanned from
// partial text - "unspecified", not zero.
const Unset = -1

// Square is a fully-resolved board coordinate: row 0 is rank 8, row 7 is
// rank 1; column 0 is file a, column 7 is file h.
type Square struct {
	Row, Col int
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// SrcHint is a disambiguation hint: either component may be Unset, meaning
// "any", yielding the four shapes spec.md describes - fully known,
// row-only, column-only, fully unknown.
type SrcHint struct {
	Row, Col int
}

// HasRow reports whether the hint pins down a rank.
func (h SrcHint) HasRow() bool { return h.Row != Unset }

// HasCol reports whether the hint pins down a file.
func (h SrcHint) HasCol() bool { return h.Col != Unset }

// Kind tags the variant of a Descriptor.
type Kind int

const (
	// KindNextMove is an ordinary (possibly ambiguous) half-move.
	KindNextMove Kind = iota
	// KindKingSideCastle is "O-O".
	KindKingSideCastle
	// KindQueenSideCastle is "O-O-O".
	KindQueenSideCastle
	// KindFinish is a game termination marker.
	KindFinish
	// KindIgnore is a recognized-but-semantically-null fragment, e.g. a
	// lone "e" or "p" left over from an "e.p." annotation.
	KindIgnore
)

// FinishMarker distinguishes why a game ended.
type FinishMarker int

const (
	WhiteWon FinishMarker = iota
	BlackWon
	Draw
	Manual
)

// Descriptor is the move-descriptor tagged union from spec.md section 3.
// Only the fields relevant to Kind are meaningful; the grammar driver and
// board engine switch on Kind before reading any other field.
type Descriptor struct {
	Kind Kind

	// Populated when Kind == KindNextMove.
	Piece        Piece
	IsWhite      bool
	Capture      bool
	Check        bool
	Checkmate    bool
	SrcHint      SrcHint
	Dst          SrcHint // destination hint; may be partially known, see spec 4.3(d)/4.4
	PromotePiece Piece   // Empty when this is not a promotion.

	// Populated when Kind == KindKingSideCastle or KindQueenSideCastle.
	CastleIsWhite bool

	// Populated when Kind == KindFinish.
	Marker FinishMarker
}
