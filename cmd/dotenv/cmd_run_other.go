//go:build windows

package main

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

func runPTY(cmd *exec.Cmd, stdin *os.File, stdout io.Writer) error {
	return errors.New("--tty is not supported on windows")
}
