// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/term"
)

var (
	invalidFilenameRe = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	underscoresRe     = regexp.MustCompile(`__+`)
	filenameEdgesRe   = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename turns a site name into a filename safe on every platform.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameRe.ReplaceAllString(filename, "_")
	filename = underscoresRe.ReplaceAllString(filename, "_")
	return filenameEdgesRe.ReplaceAllString(filename, "")
}

// Quantify returns "1 result" or "2 results".
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize uppercases the first byte of s.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize returns the dimensions of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// PrintErasable prints msg on the current line and returns a function erasing it.
// The message is cut to the terminal width so that erasing never leaves a wrapped line behind.
func PrintErasable(msg string) (eraser func()) {
	msg = fitWidth(msg, TerminalSize)

	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

func fitWidth(msg string, size func() (int, int, error)) string {
	width, _, err := size()
	if err != nil || width <= 0 {
		return msg
	}

	runes := []rune(msg)
	if len(runes) < width {
		return msg
	}
	return string(runes[:width-1])
}

// Ignore calls f and drops its error.
func Ignore(f func() error) {
	_ = f()
}
