package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// cmdRun loads the env files and runs a command with the resulting
// environment, exiting with the command's status.
func cmdRun(args []string) {
	fs, lf := newFlagSet("run")
	tty := fs.BoolP("tty", "t", false, "run the command under a pseudo-terminal")
	fs.SetInterspersed(false)
	rest := mustLoad(fs, lf, args)
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dotenv run [flags] -- <cmd> [args...]")
		os.Exit(1)
	}

	os.Exit(exitCode(runChild(rest, *tty, os.Stdin, os.Stdout, os.Stderr)))
}

// runChild runs argv with the current process environment. With tty set the
// child gets a pseudo-terminal and its stdout and stderr both arrive on
// stdout.
func runChild(argv []string, tty bool, stdin *os.File, stdout, stderr io.Writer) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	if tty {
		return runPTY(cmd, stdin, stdout)
	}
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// exitCode maps the result of running a child to our own exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		return 1
	}
	fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
	return 127
}
