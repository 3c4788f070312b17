package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/config"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/services"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	services.AuthService

	session *models.Session

	registered struct {
		email, displayName, password string
		remember                     bool
	}
	loginErr  error
	revoked   []string
	refreshed int
	loggedOut bool
	closed    bool
}

func (f *fakeAuth) Register(ctx context.Context, email, displayName string, password []byte, rememberMe bool) (*models.Session, error) {
	f.registered.email, f.registered.displayName = email, displayName
	f.registered.password, f.registered.remember = string(password), rememberMe
	f.session = &models.Session{Email: email, DisplayName: displayName, AccessToken: "A1"}
	if rememberMe {
		f.session.RefreshToken = "R1"
	}
	return f.session, nil
}

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte, rememberMe bool) (*models.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.session = &models.Session{Email: email, AccessToken: "A1"}
	return f.session, nil
}

func (f *fakeAuth) Refresh(ctx context.Context) (*models.Session, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("no deadline")
	}
	f.refreshed++
	return f.session, nil
}

func (f *fakeAuth) Revoke(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeAuth) Logout(ctx context.Context) error { f.loggedOut = true; f.session = nil; return nil }

func (f *fakeAuth) Current(ctx context.Context) (*models.Session, error) {
	if f.session == nil {
		return nil, client.ErrNotLoggedIn
	}
	return f.session, nil
}

func (f *fakeAuth) Close() error { f.closed = true; return nil }

func newTestApp(t *testing.T, f *fakeAuth, input string) (*App, *bytes.Buffer) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("pa55word"), nil }

	var out bytes.Buffer
	return &App{
		config:      &config.Config{RequestTimeout: time.Second},
		authService: f,
		reader:      rdr(input),
		out:         &out,
	}, &out
}

func TestRegisterCommand(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(t, f, "alice@example.com\nAlice\ny\n")

	require.NoError(t, a.Register(context.Background(), nil))
	require.Equal(t, "alice@example.com", f.registered.email)
	require.Equal(t, "Alice", f.registered.displayName)
	require.Equal(t, "pa55word", f.registered.password)
	require.True(t, f.registered.remember)
	require.Contains(t, out.String(), "Logged in as alice@example.com (Alice)")
	require.NotContains(t, out.String(), "not remembered")
	require.NotContains(t, out.String(), "A1")
}

func TestLoginCommand_NotRemembered(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(t, f, "alice@example.com\nn\n")

	require.NoError(t, a.Login(context.Background(), nil))
	require.Contains(t, out.String(), "not remembered")
}

func TestLoginCommand_Error(t *testing.T) {
	f := &fakeAuth{loginErr: client.ErrUnauthorized}
	a, _ := newTestApp(t, f, "alice@example.com\nn\n")

	require.ErrorIs(t, a.Login(context.Background(), nil), client.ErrUnauthorized)
}

func TestRefreshCommand_UsesTimeout(t *testing.T) {
	f := &fakeAuth{session: &models.Session{Email: "a@b.c", AccessToken: "A1", RefreshToken: "R1"}}
	a, out := newTestApp(t, f, "")

	require.NoError(t, a.Refresh(context.Background(), nil))
	require.Equal(t, 1, f.refreshed)
	require.Contains(t, out.String(), "Tokens refreshed")
}

func TestRevokeCommand(t *testing.T) {
	f := &fakeAuth{session: &models.Session{Email: "a@b.c", AccessToken: "A1", RefreshToken: "R1"}}
	a, _ := newTestApp(t, f, "")

	require.NoError(t, a.Revoke(context.Background(), nil))
	require.NoError(t, a.Revoke(context.Background(), []string{"other"}))
	require.Equal(t, []string{"", "other"}, f.revoked)
}

func TestTokenAndStatusCommands(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(t, f, "")

	require.ErrorIs(t, a.Token(context.Background(), nil), client.ErrNotLoggedIn)
	require.ErrorIs(t, a.Status(context.Background(), nil), client.ErrNotLoggedIn)
	require.False(t, a.isLoggedIn())
	require.Empty(t, a.status())

	f.session = &models.Session{Email: "a@b.c", AccessToken: "A1", RefreshToken: "R1"}
	require.NoError(t, a.Token(context.Background(), nil))
	require.Equal(t, "A1\n", out.String())
	require.True(t, a.isLoggedIn())
	require.Equal(t, "(a@b.c)", a.status())
}

func TestLogoutCommand(t *testing.T) {
	f := &fakeAuth{session: &models.Session{Email: "a@b.c", AccessToken: "A1"}}
	a, out := newTestApp(t, f, "")

	require.NoError(t, a.Logout(context.Background(), nil))
	require.True(t, f.loggedOut)
	require.Contains(t, out.String(), "Logged out")
}

func TestRun_OneShotCommand(t *testing.T) {
	f := &fakeAuth{session: &models.Session{Email: "a@b.c", AccessToken: "A1"}}
	a, out := newTestApp(t, f, "")
	a.config.Args = []string{"token"}

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, "A1\n", out.String())
	require.True(t, f.closed)
}

func TestNewApp_OpensSessionStore(t *testing.T) {
	cfg := &config.Config{
		ServerEndpointAddr: "127.0.0.1:1",
		SessionFile:        filepath.Join(t.TempDir(), "nested", "session.db"),
		RequestTimeout:     time.Second,
		Args:               []string{"status"},
	}

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	require.ErrorIs(t, a.Run(context.Background()), client.ErrNotLoggedIn)
}
