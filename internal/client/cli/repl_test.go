package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context, args []string) error {
	return f.record("register", args)
}
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Refresh(ctx context.Context, args []string) error {
	return f.record("refresh", args)
}
func (f *fakeExec) Revoke(ctx context.Context, args []string) error {
	return f.record("revoke", args)
}
func (f *fakeExec) Token(ctx context.Context, args []string) error { return f.record("token", args) }
func (f *fakeExec) Status(ctx context.Context, args []string) error {
	return f.record("status", args)
}
func (f *fakeExec) Logout(ctx context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			} else if e, ok := v.(error); ok {
				parts = append(parts, e.Error())
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrints(t)

	input := strings.Join([]string{
		"help",
		"",
		"login",
		"refresh",
		"revoke abc",
		"whoami",
		"token",
		"logout",
		"exit",
		"register",
	}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, rdr(input))

	require.Equal(t, []string{"login", "refresh", "revoke", "status", "token", "logout"}, f.calls)
	require.Equal(t, []string{"abc"}, f.args[2])
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	printed := capturePrints(t)

	f := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), f, func() string { return "" }, rdr("refresh\nbogus\nstatus"))

	require.Equal(t, []string{"refresh", "status"}, f.calls)

	joined := strings.Join(*printed, "\n")
	require.Contains(t, joined, "boom")
	require.Contains(t, joined, "unknown command: bogus")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	printed := capturePrints(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, rdr("help\nlogin\nhelp\nquit\n"))

	joined := strings.Join(*printed, "\n")
	require.Contains(t, joined, "Available commands: register, login, exit")
	require.Contains(t, joined, "Available commands: refresh, revoke [token], token, status, logout, exit")
	require.Contains(t, joined, "Bye!")
}

func TestDispatch_Unknown(t *testing.T) {
	err := dispatch(context.Background(), &fakeExec{}, "nope", nil)
	require.ErrorIs(t, err, errUnknownCommand)
}
