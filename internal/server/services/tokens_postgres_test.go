package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	qFindToken   = `SELECT token, user_id, created_at, expires_at, revoked_at\s+FROM refresh_tokens`
	qFindUser    = `SELECT id, email, display_name, password_hash, created_at FROM users\s+WHERE id = \$1`
	qRevokeIf    = `UPDATE refresh_tokens\s+SET revoked_at = \$2\s+WHERE token = \$1 AND revoked_at IS NULL`
	qInsertToken = `INSERT INTO refresh_tokens`
)

func newSQLMockFixture(t *testing.T) (*fixture, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return newFixture(t, repomanager.NewPostgresRepositoryManagerFromDB(db)), mock
}

func expectLookup(mock sqlmock.Sqlmock, f *fixture, refresh string) {
	now := f.clock.Now()
	mock.ExpectQuery(qFindToken).WithArgs(refresh).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "created_at", "expires_at", "revoked_at"}).
			AddRow(refresh, alice.ID, now, now.Add(testRefreshTTL), nil))
	mock.ExpectQuery(qFindUser).WithArgs(alice.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "display_name", "password_hash", "created_at"}).
			AddRow(alice.ID, alice.Email, alice.DisplayName, []byte("hash"), now))
}

func TestRotatePostgres_RevokeAndInsertInOneTx(t *testing.T) {
	f, mock := newSQLMockFixture(t)
	access, err := f.tokens.IssueAccessToken(alice)
	require.NoError(t, err)

	expectLookup(mock, f, "old-refresh")
	mock.ExpectBegin()
	mock.ExpectExec(qRevokeIf).WithArgs("old-refresh", f.clock.Now()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qInsertToken).
		WithArgs(sqlmock.AnyArg(), alice.ID, f.clock.Now(), f.clock.Now().Add(testRefreshTTL)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pair, err := f.tokens.Rotate(context.Background(), access, "old-refresh")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRotatePostgres_LostRaceRollsBack(t *testing.T) {
	f, mock := newSQLMockFixture(t)
	access, err := f.tokens.IssueAccessToken(alice)
	require.NoError(t, err)

	expectLookup(mock, f, "old-refresh")
	mock.ExpectBegin()
	mock.ExpectExec(qRevokeIf).WithArgs("old-refresh", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = f.tokens.Rotate(context.Background(), access, "old-refresh")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpiredOrRevoked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRotatePostgres_CollisionRetriesInsideTx(t *testing.T) {
	f, mock := newSQLMockFixture(t)
	access, err := f.tokens.IssueAccessToken(alice)
	require.NoError(t, err)

	expectLookup(mock, f, "old-refresh")
	mock.ExpectBegin()
	mock.ExpectExec(qRevokeIf).WithArgs("old-refresh", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qInsertToken).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(qInsertToken).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = f.tokens.Rotate(context.Background(), access, "old-refresh")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRotatePostgres_UnknownToken(t *testing.T) {
	f, mock := newSQLMockFixture(t)
	access, err := f.tokens.IssueAccessToken(alice)
	require.NoError(t, err)

	mock.ExpectQuery(qFindToken).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err = f.tokens.Rotate(context.Background(), access, "ghost")
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
}

func TestRotatePostgres_BeginFails(t *testing.T) {
	f, mock := newSQLMockFixture(t)
	access, err := f.tokens.IssueAccessToken(alice)
	require.NoError(t, err)

	expectLookup(mock, f, "old-refresh")
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err = f.tokens.Rotate(context.Background(), access, "old-refresh")
	require.Error(t, err)
	assert.False(t, common.IsAuthError(err))
}
