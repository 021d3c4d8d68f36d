package platform

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

// TerminalCopier is the fallback copy path: it asks the terminal emulator
// to set the clipboard with an OSC 52 escape sequence. It only works when
// w is an interactive terminal.
type TerminalCopier struct {
	w           io.Writer
	interactive bool
}

func NewTerminalCopier(w io.Writer, interactive bool) *TerminalCopier {
	return &TerminalCopier{w: w, interactive: interactive}
}

func (c *TerminalCopier) WriteText(text string) error {
	if !c.interactive {
		return ErrClipboardUnavailable
	}
	_, err := fmt.Fprintf(c.w, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}
