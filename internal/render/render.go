// Package render formats a board.Board into the ASCII grid spec.md
// section 6 names as the external collaborator's contract: not part of
// the replay pipeline, kept only so tests can assert scenario outcomes
// against an exact textual form.
package render

import (
	"strings"

	"github.com/rsavchenko/pgnreplay/internal/board"
	"github.com/rsavchenko/pgnreplay/internal/move"
)

// Board renders b as eight lines, rank 8 down to rank 1, columns
// separated by '|'. Each cell is two spaces when empty, or a lowercase
// color tag ('w' or 'b') followed by the uppercase piece letter.
func Board(b *board.Board) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cellText(b.At(move.Square{Row: row, Col: col})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellText(c board.Cell) string {
	if c.Piece == move.Empty {
		return "  "
	}
	color := byte('w')
	if !c.IsWhite {
		color = 'b'
	}
	return string([]byte{color, c.Piece.Letter()})
}
