// pgnreplay replays the mainline of a PGN game and prints the resulting
// board position.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rsavchenko/pgnreplay/internal/render"
	"github.com/rsavchenko/pgnreplay/internal/session"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgnreplay <input-file>\n\n")
	fmt.Fprintf(os.Stderr, "Replays the mainline of a PGN game and prints the final board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "pgnreplay: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, out, logOut *os.File) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg := &session.Config{Output: out, LogFile: logOut}
	b, err := session.Replay(f, cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(out, render.Board(b))
	return nil
}
