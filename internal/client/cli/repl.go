package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/docshare/internal/client/event"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// runREPL starts a simple read–eval–print loop over an event table.
//
// It reads a line from scanner, parses the first token as the event name
// and dispatches the rest as arguments. "help" lists the table, "exit" and
// "quit" leave. The loop also exits on scanner EOF or when ctx is done.
//
// Handler errors never stop the loop: usage errors print the handler's
// usage line, anything else is printed as-is. Failures the controllers
// surface themselves (alerts, sidebar messages) come back as nil.
func runREPL(ctx context.Context, table event.Table, prompt string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(prompt + "> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(table)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		h, ok := table.Lookup(cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := h.Run(ctx, args); err != nil {
			if errors.Is(err, event.ErrUsage) {
				printlnFn("Usage:", h.Usage)
				continue
			}
			printlnFn("Error:", err)
		}
	}
}

func printHelp(table event.Table) {
	printlnFn("Available commands:")
	for _, h := range table {
		printlnFn(fmt.Sprintf("  %-22s %s", h.Usage, h.Help))
	}
	printlnFn(fmt.Sprintf("  %-22s %s", "help", "show this list"))
	printlnFn(fmt.Sprintf("  %-22s %s", "exit | quit", "leave the program"))
}
