package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls   []string
	resyncs int
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) List(context.Context) error                   { return f.record("list", nil) }
func (f *fakeExec) Filter(_ context.Context, a []string) error   { return f.record("filter", a) }
func (f *fakeExec) More(context.Context) error                   { return f.record("more", nil) }
func (f *fakeExec) Next(context.Context) error                   { return f.record("next", nil) }
func (f *fakeExec) Prev(context.Context) error                   { return f.record("prev", nil) }
func (f *fakeExec) Category(_ context.Context, a []string) error { return f.record("category", a) }
func (f *fakeExec) Search(_ context.Context, a []string) error   { return f.record("search", a) }
func (f *fakeExec) Sort(_ context.Context, a []string) error     { return f.record("sort", a) }
func (f *fakeExec) Show(_ context.Context, a []string) error     { return f.record("show", a) }
func (f *fakeExec) Categories(context.Context) error             { return f.record("categories", nil) }
func (f *fakeExec) Status(context.Context) error                 { return f.record("status", nil) }
func (f *fakeExec) ClearCache(context.Context) error             { return f.record("clear-cache", nil) }

func (f *fakeExec) Resync(context.Context) error {
	f.resyncs++
	return nil
}

// output collects everything written through printlnFn.
type output struct {
	mu    sync.Mutex
	lines []string
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	o := &output{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.lines = append(o.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return o
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"",
		"filter close-to-goal",
		"more",
		"n",
		"PREV",
		"category kids",
		"search heart surgery",
		"sort urgency",
		"show heart",
		"categories",
		"status",
		"clear-cache",
		"l",
		"foobar",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online all)" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"filter close-to-goal",
		"more",
		"next",
		"prev",
		"category kids",
		"search heart surgery",
		"sort urgency",
		"show heart",
		"categories",
		"status",
		"clear-cache",
		"list",
	}, exec.calls)
	assert.Equal(t, 16, exec.resyncs)

	got := out.String()
	assert.Contains(t, got, "Available commands:")
	assert.Contains(t, got, "gf (online all) > ")
	assert.Contains(t, got, "Unknown command: foobar")
	assert.Contains(t, got, "Bye!")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("more")))

	assert.Equal(t, []string{"more"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("more\nnext\n")))

	assert.Empty(t, exec.calls)
}
