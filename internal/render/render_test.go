package render

import (
	"strings"
	"testing"

	"github.com/rsavchenko/pgnreplay/internal/board"
)

func TestBoardStartingPosition(t *testing.T) {
	out := Board(board.NewBoard())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	if lines[0] != "bR|bN|bB|bQ|bK|bB|bN|bR" {
		t.Errorf("rank 8 = %q", lines[0])
	}
	if lines[1] != "bP|bP|bP|bP|bP|bP|bP|bP" {
		t.Errorf("rank 7 = %q", lines[1])
	}
	if lines[4] != "  |  |  |  |  |  |  |  " {
		t.Errorf("rank 4 = %q", lines[4])
	}
	if lines[6] != "wP|wP|wP|wP|wP|wP|wP|wP" {
		t.Errorf("rank 2 = %q", lines[6])
	}
	if lines[7] != "wR|wN|wB|wQ|wK|wB|wN|wR" {
		t.Errorf("rank 1 = %q", lines[7])
	}
}
