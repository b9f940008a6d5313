package main

import (
	"errors"

	"github.com/gandalfthegui/dotenv/dotenv"
)

// Result codes returned across the C boundary.
const (
	codeSuccess      = 0
	codeFileNotFound = 1
	codeParseError   = 2
	codeInvalidKey   = 3 // reserved; malformed lines are skipped, not reported
)

// The functions below hold the logic of the exported C entry points. A nil
// pointer stands for a NULL char*.

func load(filename *string) int {
	path := dotenv.DefaultPath
	if filename != nil && *filename != "" {
		path = *filename
	}
	return resultCode(dotenv.Load(path))
}

func resultCode(err error) int {
	switch {
	case err == nil:
		return codeSuccess
	case errors.Is(err, dotenv.ErrFileNotFound):
		return codeFileNotFound
	default:
		return codeParseError
	}
}

func get(key, def *string) string {
	if key == nil {
		return ""
	}
	d := ""
	if def != nil {
		d = *def
	}
	return dotenv.Get(*key, d)
}

func has(key *string) int {
	if key == nil || !dotenv.Has(*key) {
		return 0
	}
	return 1
}

func isLoaded() int {
	if dotenv.IsLoaded() {
		return 1
	}
	return 0
}
