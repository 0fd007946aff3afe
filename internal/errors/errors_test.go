package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is().
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrLexical", ErrLexical, ErrLexical},
		{"ErrGrammar", ErrGrammar, ErrGrammar},
		{"ErrInterpretation", ErrInterpretation, ErrInterpretation},
		{"ErrBoard", ErrBoard, ErrBoard},
		{"ErrAmbiguous", ErrAmbiguous, ErrAmbiguous},
		{"ErrInvariant", ErrInvariant, ErrInvariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected.
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to scan input: %w", ErrLexical)

	if !errors.Is(wrapped, ErrLexical) {
		t.Errorf("errors.Is(wrapped, ErrLexical) = false, want true")
	}
}

// TestSessionError_Error verifies the error message format.
func TestSessionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SessionError
		contains []string
	}{
		{
			name: "full context",
			err: &SessionError{
				Err:      ErrAmbiguous,
				Line:     12,
				PlyNum:   5,
				MoveText: "Nd3",
			},
			contains: []string{"line 12", "ply 5", "Nd3", "ambiguous move resolution"},
		},
		{
			name: "minimal context",
			err: &SessionError{
				Err: ErrLexical,
			},
			contains: []string{"lexical error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("SessionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestSessionError_Unwrap verifies that SessionError properly implements Unwrap.
func TestSessionError_Unwrap(t *testing.T) {
	sessErr := &SessionError{
		Err:  ErrBoard,
		Line: 3,
	}

	unwrapped := errors.Unwrap(sessErr)
	if !errors.Is(unwrapped, ErrBoard) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrBoard)
	}

	if !errors.Is(sessErr, ErrBoard) {
		t.Error("errors.Is(sessErr, ErrBoard) = false, want true")
	}
}

// TestSessionError_As verifies that errors.As works with SessionError.
func TestSessionError_As(t *testing.T) {
	sessErr := &SessionError{
		Err:      ErrInterpretation,
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("processing failed: %w", sessErr)

	var extracted *SessionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract SessionError")
	}

	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}
	if extracted.MoveText != "O-O-O" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "O-O-O")
	}
}

// TestWrap verifies the Wrap helper function.
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrLexical, "scanning string atom")

	if !errors.Is(wrapped, ErrLexical) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "scanning string atom") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

// TestWrapf verifies the Wrapf helper function.
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrBoard, "resolving move %d", 15)

	if !errors.Is(wrapped, ErrBoard) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "resolving move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
