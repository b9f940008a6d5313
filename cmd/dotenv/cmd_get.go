package main

import (
	"fmt"
	"os"

	"github.com/gandalfthegui/dotenv/dotenv"
)

// cmdGet prints one variable after loading. Exits 1 when the key is unset
// and no default was given.
func cmdGet(args []string) {
	fs, lf := newFlagSet("get")
	rest := mustLoad(fs, lf, args)
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(os.Stderr, "usage: dotenv get [flags] <KEY> [DEFAULT]")
		os.Exit(1)
	}

	key := rest[0]
	if len(rest) == 1 && !dotenv.Has(key) {
		os.Exit(1)
	}
	def := ""
	if len(rest) == 2 {
		def = rest[1]
	}
	fmt.Println(dotenv.Get(key, def))
}
