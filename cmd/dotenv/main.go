// dotenv – load .env files and run commands with the result.
//
// Usage:
//
//	dotenv run [-f FILE]... -- <cmd> [args...]   – run a command with the loaded environment
//	dotenv get [-f FILE]... <KEY> [DEFAULT]     – print one variable after loading
//	dotenv keys [-f FILE]...                    – print the keys the files set
//	dotenv parse [-f FILE]...                   – show parsed entries without loading them
//
// With no -f flag the files listed in the config file are used (default: .env).
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "get":
		cmdGet(os.Args[2:])
	case "keys":
		cmdKeys(os.Args[2:])
	case "parse":
		cmdParse(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "dotenv: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `dotenv – load .env files into the environment

Commands:
  run [flags] -- <cmd> [args...]   Load the files, then run <cmd> with the result
                                   (-t: run under a pseudo-terminal)
  get [flags] <KEY> [DEFAULT]      Load the files and print KEY (DEFAULT if unset)
  keys [flags]                     Load the files and print the keys they set, in order
  parse [flags]                    Print the parsed entries without touching the environment

Flags:
  -f, --file FILE       Env file to load (repeatable; default from config, else .env)
      --no-overwrite    Keep variables that are already set
      --keep-quotes     Do not strip surrounding quotes from values
      --no-trim         Do not trim whitespace around keys and values
      --config PATH     Config file (default $XDG_CONFIG_HOME/dotenv/config.yaml)
  -v, --verbose         Debug logging`)
}
