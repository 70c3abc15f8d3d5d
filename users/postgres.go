package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jrsteele09/go-movie-reviews/internal/database"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
)

var _ UserRepo = (*PostgresRepo)(nil)

type PostgresRepo struct {
	db database.DBTX
}

func NewPostgresRepo(db database.DBTX) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, user *User) error {
	query :=
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, date_joined`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID, &user.DateJoined)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Wrapf(apperrors.ErrDuplicate, "user %s", user.Email)
		}
		return apperrors.Wrapf(err, "db error")
	}
	return nil
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, email, password_hash, date_joined FROM users
		 WHERE email = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*User, error) {
	query :=
		`SELECT id, email, password_hash, date_joined FROM users
		 WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepo) scanOne(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DateJoined)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrapf(err, "db error")
	}
	return user, nil
}
