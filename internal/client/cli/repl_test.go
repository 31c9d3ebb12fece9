package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Filter(ctx context.Context) error {
	f.calls = append(f.calls, "filter")
	return nil
}
func (f *fakeExec) Post(ctx context.Context) error { f.calls = append(f.calls, "post"); return nil }
func (f *fakeExec) Vote(ctx context.Context) error { f.calls = append(f.calls, "vote"); return nil }
func (f *fakeExec) Approve(ctx context.Context) error {
	f.calls = append(f.calls, "approve")
	return nil
}
func (f *fakeExec) Categories(ctx context.Context) error {
	f.calls = append(f.calls, "categories")
	return nil
}
func (f *fakeExec) About(ctx context.Context) error {
	f.calls = append(f.calls, "about")
	return nil
}

func runScript(t *testing.T, f *fakeExec, lines ...string) {
	t.Helper()

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(input))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	f := &fakeExec{}

	runScript(t, f,
		"list",
		"login",
		"filter",
		"post",
		"vote",
		"about",
		"whoami",
		"logout",
		"exit",
	)

	want := []string{"list", "login", "filter", "post", "vote", "about", "whoami", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestRunREPL_ShortListAlias(t *testing.T) {
	f := &fakeExec{}

	runScript(t, f, "l", "exit")

	if len(f.calls) != 1 || f.calls[0] != "list" {
		t.Fatalf("calls = %v, want [list]", f.calls)
	}
}

func TestRunREPL_UnknownCommandAndBlankLine(t *testing.T) {
	f := &fakeExec{}

	runScript(t, f, "dance", "", "categories", "quit")

	if len(f.calls) != 1 || f.calls[0] != "categories" {
		t.Fatalf("calls = %v, want [categories]", f.calls)
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	f := &fakeExec{}

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("approve\n")
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(input))

	if len(f.calls) != 1 || f.calls[0] != "approve" {
		t.Fatalf("calls = %v, want [approve]", f.calls)
	}
}
