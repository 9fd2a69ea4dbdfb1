package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	WhoAmI(ctx context.Context) error
	Questionnaire(ctx context.Context) error
	Profile(ctx context.Context) error
	Suggest(ctx context.Context) error
	Select(ctx context.Context, arg string) error
	Portfolio(ctx context.Context) error
	Catalog(ctx context.Context, arg string) error
	Users(ctx context.Context) error
	Doctors(ctx context.Context) error
	Patients(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, catalog <category>, users, doctors, patients, exit"
	helpUser  = "Available commands: whoami, questionnaire, profile, suggest, select <n>, portfolio, catalog <category>, users, doctors, patients, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Command handlers share reader for their own prompts, so the REPL must not
// buffer ahead of the current line. The loop exits on EOF, on a cancelled
// context, or when the user types "exit" or "quit". Handler errors are
// printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("ip%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if memberOnly[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "questionnaire", "q":
			cmdErr = a.Questionnaire(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "suggest":
			cmdErr = a.Suggest(ctx)

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <n>")
				continue
			}
			cmdErr = a.Select(ctx, args[0])

		case "portfolio":
			cmdErr = a.Portfolio(ctx)

		case "catalog":
			if len(args) == 0 {
				printlnFn("Usage: catalog <conservative|moderate|aggressive>")
				continue
			}
			cmdErr = a.Catalog(ctx, args[0])

		case "users":
			cmdErr = a.Users(ctx)

		case "doctors":
			cmdErr = a.Doctors(ctx)

		case "patients":
			cmdErr = a.Patients(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}

var memberOnly = map[string]bool{
	"logout":        true,
	"whoami":        true,
	"questionnaire": true,
	"q":             true,
	"profile":       true,
	"suggest":       true,
	"select":        true,
	"portfolio":     true,
}
