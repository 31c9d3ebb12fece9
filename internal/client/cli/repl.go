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
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context) error
	Post(ctx context.Context) error
	Vote(ctx context.Context) error
	Approve(ctx context.Context) error
	Categories(ctx context.Context) error
	About(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Jec Lens CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — sign in with a Google ID token
//	  - list | filter  — browse the feed (anonymous browsing is allowed)
//	  - categories     — show the department list
//	  - about          — show the team behind the project
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - post           — share a fact
//	  - vote           — vote on a fact
//	  - approve        — approve a fact (rejected server-side for non-approvers)
//	  - whoami         — show the active identity
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jec> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, filter, post, vote, approve, categories, about, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, (l)ist, filter, categories, about, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "post":
			_ = a.Post(ctx)

		case "vote":
			_ = a.Vote(ctx)

		case "approve":
			_ = a.Approve(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "about":
			_ = a.About(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
