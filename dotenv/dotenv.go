// Package dotenv loads .env files into the process environment.
//
// A file holds one KEY=VALUE entry per line. Values may be bare or wrapped
// in matching single or double quotes; a space or tab followed by '#'
// outside quotes starts an inline comment, and the escapes \n \t \r \\ \"
// \' are decoded. Blank lines, full-line comments and malformed lines are
// skipped without error.
//
// The package-level functions operate on a single process-wide Registry.
// Use NewRegistry for an isolated one.
package dotenv

import "github.com/gandalfthegui/dotenv/internal/envfile"

// DefaultPath is the file loaded when no path is given.
const DefaultPath = ".env"

// Options controls parsing and the overwrite policy of a load.
type Options = envfile.Options

// DefaultOptions returns {Overwrite: true, StripQuotes: true,
// TrimWhitespace: true}.
func DefaultOptions() Options { return envfile.DefaultOptions() }

var std = NewRegistry(nil)

// Default returns the process-wide Registry used by the package-level
// functions.
func Default() *Registry { return std }

// Load reads path (DefaultPath if empty) into the process environment with
// DefaultOptions.
func Load(path string) error {
	return LoadWithOptions(path, DefaultOptions())
}

// LoadWithOptions reads path (DefaultPath if empty) into the process
// environment.
func LoadWithOptions(path string, opts Options) error {
	if path == "" {
		path = DefaultPath
	}
	return std.LoadWithOptions(path, opts)
}

// Get returns the value of key, or def if it is unset.
func Get(key, def string) string { return std.Get(key, def) }

// Has reports whether key is set.
func Has(key string) bool { return std.Has(key) }

// LoadedKeys returns the keys set by Load, in first-seen order.
func LoadedKeys() []string { return std.LoadedKeys() }

// Clear unsets the keys set by Load.
func Clear() { std.Clear() }

// IsLoaded reports whether a file has been loaded since the last Clear.
func IsLoaded() bool { return std.IsLoaded() }

// LastError returns the message recorded by the last failed Load.
func LastError() string { return std.LastError() }
