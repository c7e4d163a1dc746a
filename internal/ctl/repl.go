package ctl

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Connect(ctx context.Context) error
	Code(ctx context.Context) error
	Password(ctx context.Context) error
	Cancel(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Status(ctx context.Context) error
	Settings(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the tgpolish control CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//   - help              show available commands
//   - connect           begin authentication (phone prompt, sends a code)
//   - code              enter the login code digit by digit
//   - password          submit the 2FA password
//   - cancel            abandon an in-progress authentication attempt
//   - start             enable message correction
//   - stop              tear down the connection, keep the stored credential
//   - disconnect        tear down the connection and deactivate the credential
//   - status            show the session state
//   - settings          show correction settings
//   - set <name> <v>    update a setting (auto_correct, min_message_length, ...)
//   - ping              check the daemon is reachable
//   - exit | quit       leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tgpolish %s> ", statusFn()))
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
			printlnFn("Available commands: connect, code, password, cancel, start, stop, disconnect, status, settings, set, ping, exit")

		case "connect":
			_ = a.Connect(ctx)

		case "code":
			_ = a.Code(ctx)

		case "password":
			_ = a.Password(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "start":
			_ = a.Start(ctx)

		case "stop":
			_ = a.Stop(ctx)

		case "disconnect":
			_ = a.Disconnect(ctx)

		case "status":
			_ = a.Status(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "set":
			_ = a.Set(ctx, args)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root fetches the initial session state and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("tgpolish control CLI (type 'help' for commands)")

	a.refreshStatus(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	s := a.lastStatus
	if s == "" {
		s = "unknown"
	}
	return fmt.Sprintf("(user %d, %s)", a.config.UserID, s)
}
