package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const (
	anonymousHelp = "Available commands: home [search] (l, list), show <postID>, login, register, nav, help, exit"
	signedInHelp  = "Available commands: home [search] (l, list), show <postID>, comment, reply <commentID>, " +
		"uncomment <commentID>, dashboard, create, edit <postID>, delete <postID>, profile, logout, nav, help, exit"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Comment(ctx context.Context) error
	Reply(ctx context.Context, args []string) error
	Uncomment(ctx context.Context, args []string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Nav(ctx context.Context) error
}

// runREPL reads a command per line from reader and dispatches it to a. The
// first token is the command and the rest are its arguments. The loop ends
// on EOF, on "exit" or "quit", or when ctx is cancelled.
//
// Handlers report their own failures to the user, so their errors are not
// printed here. The reader is shared with the interactive prompts the
// handlers run, which keeps piped input in order.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(fmt.Sprintf("blogs [%s]> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(signedInHelp)
			} else {
				printlnFn(anonymousHelp)
			}

		case "home", "l", "list":
			_ = a.Home(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "comment":
			_ = a.Comment(ctx)

		case "reply":
			_ = a.Reply(ctx, args)

		case "uncomment":
			_ = a.Uncomment(ctx, args)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "nav":
			_ = a.Nav(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no newline
			return
		}
	}
}
