package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/log/v2"
	"github.com/spf13/pflag"

	"github.com/gandalfthegui/dotenv/dotenv"
	"github.com/gandalfthegui/dotenv/internal/config"
	"github.com/gandalfthegui/dotenv/internal/envfile"
)

// loadFlags are the flags shared by every subcommand.
type loadFlags struct {
	configPath  string
	files       []string
	noOverwrite bool
	keepQuotes  bool
	noTrim      bool
	verbose     bool
}

func newFlagSet(name string) (*pflag.FlagSet, *loadFlags) {
	lf := &loadFlags{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVar(&lf.configPath, "config", config.DefaultPath(), "config file")
	fs.StringArrayVarP(&lf.files, "file", "f", nil, "env file to load (repeatable)")
	fs.BoolVar(&lf.noOverwrite, "no-overwrite", false, "keep variables that are already set")
	fs.BoolVar(&lf.keepQuotes, "keep-quotes", false, "do not strip surrounding quotes")
	fs.BoolVar(&lf.noTrim, "no-trim", false, "do not trim whitespace")
	fs.BoolVarP(&lf.verbose, "verbose", "v", false, "debug logging")
	fs.Usage = usage
	return fs, lf
}

// parseFlags parses args and exits with status 2 on a flag error.
func parseFlags(fs *pflag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
		os.Exit(2)
	}
}

// resolve merges the config file with the command-line flags and configures
// the library logger.
func (lf *loadFlags) resolve() ([]string, envfile.Options, error) {
	cfg, err := config.Load(lf.configPath)
	if err != nil {
		return nil, envfile.Options{}, err
	}

	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = log.WarnLevel
	}
	if lf.verbose {
		level = log.DebugLevel
	}
	dotenv.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dotenv",
		Level:  level,
	}))

	files := cfg.Files
	if len(lf.files) > 0 {
		files = lf.files
	}
	opts := cfg.Options
	if lf.noOverwrite {
		opts.Overwrite = false
	}
	if lf.keepQuotes {
		opts.StripQuotes = false
	}
	if lf.noTrim {
		opts.TrimWhitespace = false
	}
	return files, opts, nil
}

// loadFiles loads each file in order into the process environment.
func loadFiles(files []string, opts envfile.Options) error {
	for _, f := range files {
		if err := dotenv.LoadWithOptions(f, opts); err != nil {
			return err
		}
	}
	return nil
}

// mustLoad parses the shared flags, loads the files and returns the
// remaining positional arguments.
func mustLoad(fs *pflag.FlagSet, lf *loadFlags, args []string) []string {
	parseFlags(fs, args)
	files, opts, err := lf.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
		os.Exit(1)
	}
	if err := loadFiles(files, opts); err != nil {
		fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
		os.Exit(1)
	}
	return fs.Args()
}
