package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) error
	Theme(ctx context.Context) error
	SetTheme(ctx context.Context, theme string) error
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
//
//	Not logged in: help, register, login, exit
//	Logged in:     help, session, theme, settheme <Theme>, logout, exit
//
// Handlers print their own errors; the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sf %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: session, theme, settheme <Light|Dark|Foxy|DarkOcean>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "session":
			_ = a.Session(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "settheme":
			if len(args) != 1 {
				printlnFn("Usage: settheme <Light|Dark|Foxy|DarkOcean>")
				continue
			}
			_ = a.SetTheme(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
