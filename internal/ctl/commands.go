package ctl

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/tgpolish/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Connect prompts for a phone number and begins the authentication
// handshake. On success the daemon has asked Telegram to send a login code;
// the user continues with the "code" command.
func (a *App) Connect(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.BeginConnect(ctx, phone); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Code requested. Enter it with the 'code' command.")
	return nil
}

// Code runs the interactive code entry loop. Each keystroke is sent to the
// daemon as a separate action so the code never rests in CLI state. The
// loop ends on submit or when the user types q.
func (a *App) Code(ctx context.Context) error {
	printlnFn("Enter the login code one digit at a time.")
	printlnFn("Commands: 0-9 digit, b backspace, s submit, q leave code entry")

	for {
		input, err := getSimpleText(a.reader, "code>", os.Stdout)
		if err != nil {
			return err
		}

		var state *CodeState
		switch input {
		case "q":
			return nil
		case "b":
			state, err = a.client.CodeBackspace(ctx)
		case "s":
			state, err = a.client.CodeSubmit(ctx)
		default:
			if len(input) != 1 || input[0] < '0' || input[0] > '9' {
				printlnFn("Expected a single digit, b, s or q")
				continue
			}
			state, err = a.client.CodeDigit(ctx, input)
		}

		if err != nil {
			printlnFn("Error:", err)
			continue
		}

		if input == "s" {
			if state.PasswordRequired {
				printlnFn("2FA password required. Use the 'password' command.")
				return nil
			}
			a.refreshStatus(ctx)
			printlnFn("Connected!")
			return nil
		}

		printlnFn("Code so far:", maskCode(state.Buffer))
	}
}

// Password prompts for the 2FA password and completes the handshake.
func (a *App) Password(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.SubmitPassword(ctx, string(password)); err != nil {
		printlnFn("Error:", err)
		return err
	}

	a.refreshStatus(ctx)
	printlnFn("Connected!")
	return nil
}

// Cancel abandons an in-progress authentication attempt.
func (a *App) Cancel(ctx context.Context) error {
	if err := a.client.CancelAuth(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Authentication attempt cancelled.")
	return nil
}

// Start enables outgoing message correction for the connected session.
func (a *App) Start(ctx context.Context) error {
	if err := a.client.Start(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	a.refreshStatus(ctx)
	printlnFn("Correction started.")
	return nil
}

// Stop tears down the live connection. The stored credential stays active,
// so a later "start" reconnects without a new login code.
func (a *App) Stop(ctx context.Context) error {
	wasActive, err := a.client.Stop(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	a.refreshStatus(ctx)
	if wasActive {
		printlnFn("Correction stopped.")
	} else {
		printlnFn("Correction was not running.")
	}
	return nil
}

// Disconnect tears down the Telegram connection and deactivates the stored
// credential; connecting again requires a fresh login code.
func (a *App) Disconnect(ctx context.Context) error {
	wasActive, err := a.client.Disconnect(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	a.refreshStatus(ctx)
	if wasActive {
		printlnFn("Disconnected (correction was running).")
	} else {
		printlnFn("Disconnected.")
	}
	return nil
}

// Status prints the daemon's view of the session.
func (a *App) Status(ctx context.Context) error {
	status, err := a.client.Status(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	a.lastStatus = status
	printlnFn("Status:", status)
	return nil
}

// Settings prints the current correction settings.
func (a *App) Settings(ctx context.Context) error {
	s, err := a.client.GetSettings(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("auto_correct:", s.AutoCorrectEnabled)
	printlnFn("min_message_length:", s.MinMessageLength)

	keys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printlnFn(fmt.Sprintf("%s: %s", k, s.Extra[k]))
	}
	return nil
}

// Set updates a single setting, e.g. "set min_message_length 25".
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: set <name> <value>")
		return nil
	}

	name := args[0]
	value := strings.Join(args[1:], " ")

	if err := a.client.UpdateSetting(ctx, name, value); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("OK")
	return nil
}

// Ping checks daemon reachability.
func (a *App) Ping(ctx context.Context) error {
	status, err := a.client.Ping(ctx)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Server:", status)
	return nil
}

// refreshStatus updates the prompt status after lifecycle commands.
// Failures are ignored; a stale prompt is harmless.
func (a *App) refreshStatus(ctx context.Context) {
	if status, err := a.client.Status(ctx); err == nil {
		a.lastStatus = status
	}
}

// maskCode hides already-entered digits, showing only how many are in.
func maskCode(buffer string) string {
	if buffer == "" {
		return "(empty)"
	}
	return strings.Repeat("*", len(buffer))
}
