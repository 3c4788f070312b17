package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error
	Revoke(ctx context.Context, args []string) error
	Token(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
}

func help(a execIface) {
	if a.isLoggedIn() {
		printlnFn("Available commands: refresh, revoke [token], token, status, logout, exit")
	} else {
		printlnFn("Available commands: register, login, exit")
	}
}

// dispatch runs one command.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		help(a)
		return nil
	case "register":
		return a.Register(ctx, args)
	case "login":
		return a.Login(ctx, args)
	case "refresh":
		return a.Refresh(ctx, args)
	case "revoke":
		return a.Revoke(ctx, args)
	case "token":
		return a.Token(ctx, args)
	case "status", "whoami":
		return a.Status(ctx, args)
	case "logout":
		return a.Logout(ctx, args)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

// runREPL reads commands line by line until EOF or exit/quit. Command
// errors are printed and the loop goes on. Commands prompt through the same
// reader, so nothing may buffer input ahead of them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, parts[0], parts[1:]); err != nil {
			printlnFn("Error:", err)
		}
	}
}
