//go:build !windows

package main

import (
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// runPTY starts cmd on a new pseudo-terminal, puts stdin in raw mode when it
// is a terminal and copies bytes both ways until the child exits.
func runPTY(cmd *exec.Cmd, stdin *os.File, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	// Forward terminal resize events.
	winchCh := make(chan os.Signal, 1)
	signal.Notify(winchCh, syscall.SIGWINCH)
	go func() {
		for range winchCh {
			pty.InheritSize(stdin, ptmx)
		}
	}()
	winchCh <- syscall.SIGWINCH
	defer func() {
		signal.Stop(winchCh)
		close(winchCh)
	}()

	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err == nil {
			defer term.Restore(fd, oldState)
		}
	}

	go io.Copy(ptmx, stdin)
	io.Copy(stdout, ptmx)
	return cmd.Wait()
}
