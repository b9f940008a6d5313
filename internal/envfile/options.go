package envfile

// Options controls how lines are parsed and how a loader applies them.
type Options struct {
	// Overwrite replaces values already present in the environment.
	Overwrite bool `yaml:"overwrite" toml:"overwrite"`
	// Interpolate is reserved for ${VAR} expansion and currently has no effect.
	Interpolate bool `yaml:"interpolate" toml:"interpolate"`
	// StripQuotes removes one pair of matching surrounding quotes from values.
	StripQuotes bool `yaml:"strip_quotes" toml:"strip_quotes"`
	// TrimWhitespace trims lines, keys and values.
	TrimWhitespace bool `yaml:"trim_whitespace" toml:"trim_whitespace"`
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{
		Overwrite:      true,
		StripQuotes:    true,
		TrimWhitespace: true,
	}
}
