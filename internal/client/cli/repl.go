package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	More(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Category(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Status(ctx context.Context) error
	ClearCache(ctx context.Context) error
	Resync(ctx context.Context) error
}

const helpText = `Available commands:
  (l)ist                 show the current screen
  filter [name]          close-to-goal, just-launched, needs-momentum, all
  more                   load the next page
  (n)ext | (p)rev        move through the loaded campaigns
  category [slug|all]    narrow by category
  search [text]          narrow by title or description; empty clears
  sort [impact|newest|urgency]
  show <slug>            campaign details
  categories             list categories
  status                 connectivity and browsing state
  clear-cache            drop the local campaign cache
  exit | quit            leave the program`

// runREPL starts a simple read–eval–print loop for the gophfund CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches the remaining tokens to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF,
// context cancellation or when the user types "exit" or "quit".
//
// Before each prompt a pending reload after reconnecting is applied.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		_ = a.Resync(ctx)
		printlnFn(fmt.Sprintf("gf %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx, args)

		case "more":
			_ = a.More(ctx)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "category":
			_ = a.Category(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "sort":
			_ = a.Sort(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "status":
			_ = a.Status(ctx)

		case "clear-cache":
			_ = a.ClearCache(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
