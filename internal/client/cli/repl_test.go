package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/docshare/internal/client/event"
	"github.com/stretchr/testify/assert"
)

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesThroughTable(t *testing.T) {
	lines := capturePrintln(t)

	var calls []string
	table := event.Table{
		{Name: "add", Usage: "add <path...>", Run: func(ctx context.Context, args []string) error {
			calls = append(calls, "add "+strings.Join(args, ","))
			return nil
		}},
		{Name: "remove", Usage: "remove <n>", Run: func(ctx context.Context, args []string) error {
			return fmt.Errorf("%w: remove <n>", event.ErrUsage)
		}},
		{Name: "copy", Usage: "copy", Run: func(ctx context.Context, args []string) error {
			return errors.New("boom")
		}},
	}

	input := strings.NewReader(strings.Join([]string{
		"help",
		"",
		"add a.pdf b.pdf",
		"remove",
		"copy",
		"foobar",
		"exit",
		"add never.pdf",
	}, "\n"))

	runREPL(context.Background(), table, "upload", bufio.NewScanner(input))

	assert.Equal(t, []string{"add a.pdf,b.pdf"}, calls)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "Usage: remove <n>")
	assert.Contains(t, out, "Error: boom")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	capturePrintln(t)

	runREPL(context.Background(), nil, "view", bufio.NewScanner(strings.NewReader("")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	table := event.Table{{Name: "x", Run: func(ctx context.Context, args []string) error {
		called = true
		return nil
	}}}
	runREPL(ctx, table, "view", bufio.NewScanner(strings.NewReader("x\n")))
	assert.False(t, called)
}

func TestGetSimpleText(t *testing.T) {
	var out strings.Builder
	sc := bufio.NewScanner(strings.NewReader("  Jane Doe \n"))

	got, err := GetSimpleText(sc, "Customer name", &out)
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", got)
	assert.Equal(t, "Customer name\n> ", out.String())

	_, err = GetSimpleText(sc, "again", &out)
	assert.Error(t, err)
}
