// Package errors provides sentinel errors and error types for the pgnreplay
// session. It defines the fatal-error classes a replay session can surface
// and a context-carrying wrapper that preserves source position while still
// allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fatal-error classes a replay session can surface.
// Use these with errors.Is() to check for a specific class of failure.
var (
	// ErrLexical indicates the scanner could not classify or complete an atom.
	ErrLexical = errors.New("lexical error")

	// ErrGrammar indicates an atom arrived in a state with no transition.
	ErrGrammar = errors.New("grammar error")

	// ErrInterpretation indicates malformed SAN move text.
	ErrInterpretation = errors.New("move interpretation error")

	// ErrBoard indicates the board engine could not resolve or apply a move.
	ErrBoard = errors.New("board error")

	// ErrAmbiguous indicates a half-move resolved to zero or more than one
	// legal (source, destination) pair.
	ErrAmbiguous = errors.New("ambiguous move resolution")

	// ErrInvariant indicates an internal assertion fired. Well-formed input
	// should never trigger this; it marks a programming error rather than
	// a malformed-input error.
	ErrInvariant = errors.New("internal invariant violated")
)

// SessionError wraps a sentinel with the source position and text that
// produced it, including ply context, the offending token or move
// text, and the source line, while still unwrapping to the sentinel.
type SessionError struct {
	Err      error  // The underlying sentinel
	Line     uint   // 1-based source line (0 if unknown)
	PlyNum   int    // 1-based half-move number (0 if not applicable)
	MoveText string // The offending atom or move text, if any
}

// Error returns a formatted error message including all available context.
func (e *SessionError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying sentinel, enabling errors.Is() and
// errors.As() to work through the SessionError wrapper.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
