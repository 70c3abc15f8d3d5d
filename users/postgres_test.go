package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/stretchr/testify/require"
)

const (
	insertUserQuery = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id,\s*date_joined\s*$`
	selectByEmail   = `(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*date_joined\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	selectByID      = `(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*date_joined\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepo(db), mock
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	joined := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertUserQuery).
		WithArgs("a@b.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_joined"}).AddRow("u-1", joined))

	u := &User{Email: "a@b.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	require.Equal(t, "u-1", u.ID)
	require.Equal(t, joined, u.DateJoined)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertUserQuery).
		WithArgs("a@b.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &User{Email: "a@b.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertUserQuery).
		WithArgs("a@b.com", "hash").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &User{Email: "a@b.com", PasswordHash: "hash"})
	require.ErrorContains(t, err, "db error: db down")
	require.NotErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestPostgresGetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	joined := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectByEmail).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "date_joined"}).
			AddRow("u-1", "a@b.com", "hash", joined))

	got, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Equal(t, &User{ID: "u-1", Email: "a@b.com", PasswordHash: "hash", DateJoined: joined}, got)
}

func TestPostgresGetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectByEmail).
		WithArgs("ghost@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@b.com")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgresGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectByID).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "date_joined"}).
			AddRow("u-1", "a@b.com", "hash", time.Now()))

	got, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got.Email)

	mock.ExpectQuery(selectByID).
		WithArgs("u-2").
		WillReturnError(errors.New("conn reset"))

	_, err = repo.GetByID(context.Background(), "u-2")
	require.ErrorContains(t, err, "db error")
}
