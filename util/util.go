// Package util holds small terminal and filesystem helpers.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

// TerminalSize is the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalWidth is the terminal width, or a fixed width when there is no terminal.
func TerminalWidth() int {
	w, _, err := TerminalSize()
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// Wrap word-wraps s to width columns. Non-positive widths leave s alone.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PrintErasable prints msg on the current line and returns a function that clears it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stderr, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore runs f and drops its error.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes a file, or a directory with everything in it.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
