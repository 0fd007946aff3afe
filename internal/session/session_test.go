package session

import (
	"strings"
	"testing"

	"github.com/rsavchenko/pgnreplay/internal/render"
)

func replay(t *testing.T, pgn string) string {
	t.Helper()
	var log strings.Builder
	b, err := Replay(strings.NewReader(pgn), &Config{LogFile: &log})
	if err != nil {
		t.Fatalf("Replay(%q) error: %v\nlog:\n%s", pgn, err, log.String())
	}
	return render.Board(b)
}

// Scenario 1 from spec.md section 8.
func TestScenarioDoublePushThenSimpleMove(t *testing.T) {
	got := replay(t, "1. e4 e5 2. Nf3")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if lines[4] != "  |  |  |  |wP|  |  |  " {
		t.Errorf("rank 4 = %q", lines[4])
	}
	if lines[3] != "  |  |  |  |bP|  |  |  " {
		t.Errorf("rank 5 = %q", lines[3])
	}
	if lines[5] != "  |  |  |  |  |wN|  |  " {
		t.Errorf("rank 3 = %q", lines[5])
	}
}

// Scenario 4 from spec.md section 8: king-side castling.
func TestScenarioKingSideCastle(t *testing.T) {
	got := replay(t, "1. Nf3 Nc6 2. g3 g6 3. Bg2 Bg7 4. O-O")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if lines[7] != "wR|wN|wB|wQ|  |wR|wK|  " {
		t.Errorf("rank 1 = %q", lines[7])
	}
}

// Scenario 6 from spec.md section 8: RAVs and comments do not change the
// final board.
func TestScenarioRAVAndCommentSkipping(t *testing.T) {
	withRAV := replay(t, "1. e4 (1. d4 d5) {Ruy Lopez} e5")
	plain := replay(t, "1. e4 e5")
	if withRAV != plain {
		t.Errorf("RAV/comment-laden replay diverged from the plain one:\n%s\nvs\n%s", withRAV, plain)
	}
}

func TestReplayStopsAtResultMarker(t *testing.T) {
	got := replay(t, "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0")
	if got == "" {
		t.Fatal("expected a rendered board")
	}
}

func TestReplayPropagatesLexicalError(t *testing.T) {
	if _, err := Replay(strings.NewReader("1. e4 @"), nil); err == nil {
		t.Fatal("expected a lexical error for '@'")
	}
}

func TestReplayPropagatesBoardError(t *testing.T) {
	// Black's queen cannot reach h4 on the first move: e7's pawn still
	// blocks the diagonal.
	if _, err := Replay(strings.NewReader("1. e4 Qh4"), nil); err == nil {
		t.Fatal("expected a board error for an unresolvable move")
	}
}
