package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Experiences(ctx context.Context) error
	Profile(ctx context.Context) error
	Write(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Contact(ctx context.Context) error
}

// runREPL reads commands line by line from reader, dispatches them to a and
// writes prompts and help to w. Views share the same writer, so output stays
// in order.
//
// Commands
//
//	home                     landing page
//	register | login         account views
//	logout | whoami          session
//	experiences | ls         the public feed
//	profile                  your profile (login required)
//	write                    publish an experience (login required)
//	edit <id> | delete <id>  change your experiences (login required)
//	contact                  send a message to the team
//	exit | quit
//
// Errors returned by handlers are already reported to the user; the loop
// keeps going. It ends on EOF or exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "exp %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
				fmt.Fprintln(w, "Available commands: home, experiences, write, edit <id>, delete <id>, profile, contact, whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: home, experiences, register, login, contact, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "ls", "experiences":
			_ = a.Experiences(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "write":
			_ = a.Write(ctx)

		case "edit", "delete":
			if len(args) == 0 {
				fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
				continue
			}
			if cmd == "edit" {
				_ = a.Edit(ctx, args[0])
			} else {
				_ = a.Delete(ctx, args[0])
			}

		case "contact":
			_ = a.Contact(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
