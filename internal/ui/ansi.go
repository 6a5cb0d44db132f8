package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// colorFor reports whether escape codes should be written to w.
func colorFor(w io.Writer) bool {
	if disableColor {
		return false
	}
	if forceColor {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in color when w is a terminal.
func C(w io.Writer, color, s string) string {
	if color == "" || !colorFor(w) {
		return s
	}
	return color + s + reset
}

// Fail prints an error line.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(w, fgRed, symCross+" "+msg)) }
