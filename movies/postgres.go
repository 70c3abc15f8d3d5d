package movies

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jrsteele09/go-movie-reviews/internal/database"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
)

var _ MovieRepo = (*PostgresRepo)(nil)

type PostgresRepo struct {
	db database.DBTX
}

func NewPostgresRepo(db database.DBTX) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context) ([]Movie, error) {
	query :=
		`SELECT id, name, director, synopsis, created_at, updated_at FROM movies
		 ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrapf(err, "db error")
	}
	defer rows.Close()

	var list []Movie
	for rows.Next() {
		var (
			m        Movie
			synopsis sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Director, &synopsis, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.Wrapf(err, "db scan error")
		}
		m.Synopsis = synopsis.String
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrapf(err, "db rows error")
	}
	return list, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (*Movie, error) {
	query :=
		`SELECT id, name, director, synopsis, created_at, updated_at FROM movies
		 WHERE id = $1`

	var (
		m        Movie
		synopsis sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Director, &synopsis, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrapf(err, "db error")
	}
	m.Synopsis = synopsis.String
	return &m, nil
}

func (r *PostgresRepo) Create(ctx context.Context, movie *Movie) error {
	query :=
		`INSERT INTO movies (name, director, synopsis)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, movie.Name, movie.Director, database.NullString(movie.Synopsis)).
		Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		return apperrors.Wrapf(err, "db error")
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, movie *Movie) error {
	query :=
		`UPDATE movies
		 SET name = $1, director = $2, synopsis = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, movie.Name, movie.Director, database.NullString(movie.Synopsis), movie.ID).
		Scan(&movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrapf(err, "db error")
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrapf(err, "db error")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Wrapf(err, "db error")
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
