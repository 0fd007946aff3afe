// Package session wires the lexer, grammar driver, and board engine into
// the single programmatic entry point the CLI and tests call, mirroring
// the teacher's split between its cmd/ front-end and the internal parser/
// engine pair it drives.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rsavchenko/pgnreplay/internal/atom"
	"github.com/rsavchenko/pgnreplay/internal/board"
	pgnerrors "github.com/rsavchenko/pgnreplay/internal/errors"
	"github.com/rsavchenko/pgnreplay/internal/grammar"
	"github.com/rsavchenko/pgnreplay/internal/move"
)

// Config holds the session's output destinations and strictness setting,
// trimmed from the teacher's internal/config.Config to this tool's
// concerns.
type Config struct {
	// Output is where a successful replay's rendering, if any, is
	// written. Replay itself never writes here; it is left for callers
	// (the CLI) that want to print the result via the render package.
	Output io.Writer
	// LogFile receives session diagnostics.
	LogFile io.Writer
	// Strict governs whether an internal invariant violation (one that
	// should never fire on well-formed input) panics, surfacing the
	// programming error immediately, rather than returning it as an
	// ordinary error.
	Strict bool
}

// NewConfig returns a Config defaulting to stdout/stderr, matching the
// teacher's own defaults.
func NewConfig() *Config {
	return &Config{Output: os.Stdout, LogFile: os.Stderr}
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Replay reads PGN text from r and replays its mainline to completion,
// returning the resulting board. It stops at the first Finish descriptor
// or at end of input, whichever comes first; both are successful replays.
func Replay(r io.Reader, cfg *Config) (*board.Board, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	lex := atom.New(r)
	drv := grammar.New(lex)
	b := board.NewBoard()

	ply := 0
	for {
		desc, err := drv.Next()
		if err == io.EOF {
			cfg.logf("replay: end of input after %d ply\n", ply)
			return b, nil
		}
		if err != nil {
			return nil, annotate(err, ply)
		}

		if desc.Kind == move.KindFinish {
			cfg.logf("replay: game finished after %d ply (marker=%v)\n", ply, desc.Marker)
			return b, nil
		}
		if desc.Kind == move.KindIgnore {
			continue
		}

		if err := b.Apply(desc); err != nil {
			if cfg.Strict && isInvariantViolation(err) {
				panic(err)
			}
			return nil, annotate(err, ply)
		}
		ply++
		cfg.logf("replay: applied ply %d (%+v)\n", ply, desc)
	}
}

func isInvariantViolation(err error) bool {
	return errors.Is(err, pgnerrors.ErrInvariant)
}

// annotate stamps the 1-based number of the half-move being processed
// (ply applied half-moves so far, plus one) onto a SessionError so callers
// reporting the failure can name where replay broke down.
func annotate(err error, ply int) error {
	var se *pgnerrors.SessionError
	if !errors.As(err, &se) {
		return err
	}
	se.PlyNum = ply + 1
	return se
}
