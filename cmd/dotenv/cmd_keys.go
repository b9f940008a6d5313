package main

import (
	"fmt"
	"os"

	"github.com/gandalfthegui/dotenv/dotenv"
)

func cmdKeys(args []string) {
	fs, lf := newFlagSet("keys")
	if rest := mustLoad(fs, lf, args); len(rest) != 0 {
		fmt.Fprintln(os.Stderr, "usage: dotenv keys [flags]")
		os.Exit(1)
	}
	for _, k := range dotenv.LoadedKeys() {
		fmt.Println(k)
	}
}
