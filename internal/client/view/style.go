package view

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// Style controls terminal decoration. The zero value renders plain text.
type Style struct {
	Color bool
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// StyleFor enables decoration when w is a terminal.
func StyleFor(w io.Writer) Style {
	return Style{Color: IsTerminal(w)}
}

func (s Style) bold(text string) string {
	if !s.Color {
		return text
	}
	return ansiBold + text + ansiReset
}

func (s Style) dim(text string) string {
	if !s.Color {
		return text
	}
	return ansiDim + text + ansiReset
}
