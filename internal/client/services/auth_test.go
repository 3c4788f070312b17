package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/repositories/session"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

type fakeClient struct {
	access, refresh string

	RegisterRet *models.Session
	RegisterErr error
	LoginRet    *models.Session
	LoginErr    error

	// RefreshTo is the pair handed out by Refresh.
	RefreshTo  [2]string
	RefreshErr error

	// RotateOnRevoke simulates the interceptor rotating before the call.
	RotateOnRevoke bool
	RevokeErr      error
	Revoked        []string

	Closed bool
}

func (f *fakeClient) Close() error { f.Closed = true; return nil }

func (f *fakeClient) Register(ctx context.Context, email, displayName string, password []byte, rememberMe bool) (*models.Session, error) {
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	f.SetTokens(f.RegisterRet.AccessToken, f.RegisterRet.RefreshToken)
	s := *f.RegisterRet
	return &s, nil
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte, rememberMe bool) (*models.Session, error) {
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.SetTokens(f.LoginRet.AccessToken, f.LoginRet.RefreshToken)
	s := *f.LoginRet
	return &s, nil
}

func (f *fakeClient) Refresh(ctx context.Context) error {
	if f.RefreshErr != nil {
		return f.RefreshErr
	}
	f.access, f.refresh = f.RefreshTo[0], f.RefreshTo[1]
	return nil
}

func (f *fakeClient) Revoke(ctx context.Context, token string) error {
	if f.RotateOnRevoke {
		f.RotateOnRevoke = false
		if err := f.Refresh(ctx); err != nil {
			return err
		}
	}
	if f.RevokeErr != nil {
		return f.RevokeErr
	}
	f.Revoked = append(f.Revoked, token)
	return nil
}

func (f *fakeClient) SetTokens(a, r string)    { f.access, f.refresh = a, r }
func (f *fakeClient) Tokens() (string, string) { return f.access, f.refresh }

// ---- helpers ----

func newService(t *testing.T, fc *fakeClient) (AuthService, session.Repository) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := session.NewSQLiteRepository(db)
	return NewAuthService(fc, repo), repo
}

func alice(access, refresh string) *models.Session {
	return &models.Session{Email: "alice@example.com", DisplayName: "Alice", AccessToken: access, RefreshToken: refresh}
}

// ---- tests ----

func TestRegister_PersistsSession(t *testing.T) {
	fc := &fakeClient{RegisterRet: alice("A1", "R1")}
	svc, repo := newService(t, fc)
	ctx := context.Background()

	s, err := svc.Register(ctx, "alice@example.com", "Alice", []byte("pw"), true)
	require.NoError(t, err)
	require.Equal(t, "R1", s.RefreshToken)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, alice("A1", "R1"), stored)
}

func TestLogin_ErrorLeavesSessionUntouched(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	svc, repo := newService(t, fc)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, alice("A0", "R0")))

	_, err := svc.Login(ctx, "alice@example.com", []byte("bad"), true)
	require.ErrorIs(t, err, client.ErrUnauthorized)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "A0", stored.AccessToken)
}

func TestCurrent_NotLoggedIn(t *testing.T) {
	svc, _ := newService(t, &fakeClient{})

	_, err := svc.Current(context.Background())
	require.ErrorIs(t, err, client.ErrNotLoggedIn)
}

func TestRefresh_StoresRotatedPair(t *testing.T) {
	fc := &fakeClient{RefreshTo: [2]string{"A2", "R2"}}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	s, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, "A2", s.AccessToken)
	require.Equal(t, "R2", s.RefreshToken)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, alice("A2", "R2"), stored)
}

func TestRefresh_WithoutRefreshToken(t *testing.T) {
	fc := &fakeClient{}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "")))

	_, err := svc.Refresh(ctx)
	require.ErrorIs(t, err, client.ErrNotLoggedIn)
}

func TestRefresh_ServerRejects(t *testing.T) {
	fc := &fakeClient{RefreshErr: client.ErrUnauthorized}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	_, err := svc.Refresh(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestRevoke_OwnTokenIsDropped(t *testing.T) {
	fc := &fakeClient{}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	require.NoError(t, svc.Revoke(ctx, ""))
	require.Equal(t, []string{"R1"}, fc.Revoked)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "A1", stored.AccessToken)
	require.Empty(t, stored.RefreshToken)
}

func TestRevoke_OtherTokenKeepsSession(t *testing.T) {
	fc := &fakeClient{}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	require.NoError(t, svc.Revoke(ctx, "R-other"))
	require.Equal(t, []string{"R-other"}, fc.Revoked)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "R1", stored.RefreshToken)
}

func TestRevoke_RotationMidCallRevokesSuccessor(t *testing.T) {
	fc := &fakeClient{RotateOnRevoke: true, RefreshTo: [2]string{"A2", "R2"}}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	require.NoError(t, svc.Revoke(ctx, ""))
	require.Equal(t, []string{"R1", "R2"}, fc.Revoked)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "A2", stored.AccessToken)
	require.Empty(t, stored.RefreshToken)
}

func TestRevoke_FailureStillStoresRotation(t *testing.T) {
	fc := &fakeClient{RotateOnRevoke: true, RefreshTo: [2]string{"A2", "R2"}, RevokeErr: client.ErrNotFound}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	err := svc.Revoke(ctx, "unknown")
	require.ErrorIs(t, err, client.ErrNotFound)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, alice("A2", "R2"), stored)
}

func TestRevoke_NothingToRevoke(t *testing.T) {
	svc, repo := newService(t, &fakeClient{})
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "")))

	require.ErrorIs(t, svc.Revoke(ctx, ""), client.ErrInvalidArgument)
}

func TestLogout(t *testing.T) {
	fc := &fakeClient{}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	require.NoError(t, svc.Logout(ctx))
	require.Equal(t, []string{"R1"}, fc.Revoked)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, stored)

	a, r := fc.Tokens()
	require.Empty(t, a)
	require.Empty(t, r)
}

func TestLogout_RevokeFailureKeepsSession(t *testing.T) {
	fc := &fakeClient{RevokeErr: errors.New("boom")}
	svc, repo := newService(t, fc)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, alice("A1", "R1")))

	require.Error(t, svc.Logout(ctx))

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestClose(t *testing.T) {
	fc := &fakeClient{}
	svc, _ := newService(t, fc)
	require.NoError(t, svc.Close())
	require.True(t, fc.Closed)
}
