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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	ShowPost(ctx context.Context, arg string) error
	Join(ctx context.Context, arg string) error
	Comment(ctx context.Context, arg string) error
	NewPost(ctx context.Context) error
	MyPosts(ctx context.Context) error
	Notifications(ctx context.Context) error
	Accept(ctx context.Context, arg string) error
	Reject(ctx context.Context, arg string) error
	Profile(ctx context.Context) error
	Teams(ctx context.Context) error
	ShowTeam(ctx context.Context, arg string) error
	Courses(ctx context.Context) error
	Messages(ctx context.Context) error
	Search(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the TeamUp CLI.
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
//	Not signed in:
//	  - help           — show available commands
//	  - home           — browse popular posts
//	  - post <id>      — view a post and its comments
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Signed in, additionally:
//	  - newpost        — create a recruiting post
//	  - myposts        — your posts
//	  - join <id>      — send a join request for a post
//	  - comment <id>   — comment on a post
//	  - notifications  — received join requests
//	  - accept <id>    — accept a received request
//	  - reject <id>    — reject a received request
//	  - profile        — profile dashboard
//	  - teams          — your teams
//	  - team <id>      — one team with members
//	  - courses        — your courses and popular tags
//	  - messages       — recent activity feed
//	  - search         — interactive course/post search
//	  - logout         — sign out
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("teamup %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, post <id>, newpost, myposts, join <id>, comment <id>, notifications, accept <id>, reject <id>, profile, teams, team <id>, courses, messages, search, logout, exit")
			} else {
				printlnFn("Available commands: home, post <id>, search, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Home(ctx)

		case "post":
			if len(args) == 0 {
				printlnFn("Usage: post <id>")
				continue
			}
			_ = a.ShowPost(ctx, args[0])

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <id>")
				continue
			}
			_ = a.Join(ctx, args[0])

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <id>")
				continue
			}
			_ = a.Comment(ctx, args[0])

		case "newpost":
			_ = a.NewPost(ctx)

		case "myposts":
			_ = a.MyPosts(ctx)

		case "n", "notifications":
			_ = a.Notifications(ctx)

		case "accept":
			if len(args) == 0 {
				printlnFn("Usage: accept <id>")
				continue
			}
			_ = a.Accept(ctx, args[0])

		case "reject":
			if len(args) == 0 {
				printlnFn("Usage: reject <id>")
				continue
			}
			_ = a.Reject(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "teams":
			_ = a.Teams(ctx)

		case "team":
			if len(args) == 0 {
				printlnFn("Usage: team <id>")
				continue
			}
			_ = a.ShowTeam(ctx, args[0])

		case "courses":
			_ = a.Courses(ctx)

		case "messages":
			_ = a.Messages(ctx)

		case "s", "search":
			_ = a.Search(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
