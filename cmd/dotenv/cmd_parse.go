package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gandalfthegui/dotenv/internal/envfile"
)

// parseValueWidth is the display width of values in parse output.
const parseValueWidth = 60

// cmdParse prints the entries each file would produce, without touching the
// environment.
func cmdParse(args []string) {
	fs, lf := newFlagSet("parse")
	full := fs.Bool("full", false, "do not truncate long values")
	parseFlags(fs, args)
	if len(fs.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "usage: dotenv parse [flags]")
		os.Exit(1)
	}
	files, opts, err := lf.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
		os.Exit(1)
	}

	width := parseValueWidth
	if *full {
		width = 0
	}
	color := isTerminal(os.Stdout)
	status := 0
	for _, path := range files {
		entries, err := envfile.ReadFile(path, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
			status = 1
			continue
		}
		printEntries(os.Stdout, path, entries, width, color)
	}
	os.Exit(status)
}

// printEntries writes one "KEY=<quoted value>" line per entry under a
// header naming the file. width <= 0 disables truncation.
func printEntries(w io.Writer, path string, entries []envfile.Entry, width int, color bool) {
	fmt.Fprintf(w, "%s (%d)\n", paint(color, colorBold, path), len(entries))
	for _, e := range entries {
		v := strconv.Quote(e.Value)
		if width > 0 {
			v = truncate(v, width)
		}
		fmt.Fprintf(w, "  %s=%s\n", paint(color, colorCyan, e.Key), paint(color, colorDim, v))
	}
}
