package platform

import (
	"fmt"
	"io"
	"sync"
)

// Alerter shows a message the user has to notice.
type Alerter interface {
	Alert(msg string)
}

type ConsoleAlerter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleAlerter(w io.Writer) *ConsoleAlerter {
	return &ConsoleAlerter{w: w}
}

func (a *ConsoleAlerter) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.w, "\n!! %s\n", msg)
}
