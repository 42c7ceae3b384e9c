package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
)

func printWarning(w io.Writer, message string) {
	line := "Warning: " + message
	if colorEnabled(w) {
		line = ansiYellow + line + ansiReset
	}
	fmt.Fprintln(w, line)
}

func colorEnabled(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
