// Package event holds the per-controller handler tables the REPL
// dispatches commands through.
package event

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUsage is returned by a handler whose arguments do not fit its usage.
var ErrUsage = errors.New("usage")

// HandlerFunc reacts to one event. args are the whitespace-separated
// tokens after the event name.
type HandlerFunc func(ctx context.Context, args []string) error

type Handler struct {
	Name  string
	Usage string
	Help  string
	Run   HandlerFunc
}

// Table is an ordered set of handlers; order is the order shown in help.
type Table []Handler

func (t Table) Lookup(name string) (Handler, bool) {
	for _, h := range t {
		if h.Name == name {
			return h, true
		}
	}
	return Handler{}, false
}

func (t Table) Names() []string {
	out := make([]string, len(t))
	for i, h := range t {
		out[i] = h.Name
	}
	return out
}

// Dispatch runs the handler registered under name.
func (t Table) Dispatch(ctx context.Context, name string, args []string) error {
	h, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return h.Run(ctx, args)
}

// Index parses a 1-based index as typed by the user into a 0-based one.
// Range checks are left to the handler.
func Index(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
	}
	return n - 1, nil
}

// Rest joins args back into one string, for free-text arguments.
func Rest(args []string) string {
	return strings.Join(args, " ")
}
