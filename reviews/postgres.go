package reviews

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jrsteele09/go-movie-reviews/internal/database"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
)

var _ ReviewRepo = (*PostgresRepo)(nil)

type PostgresRepo struct {
	db database.DBTX
}

func NewPostgresRepo(db database.DBTX) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, review *Review) error {
	query :=
		`INSERT INTO reviews (score, review, user_id, movie_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, review.Score, database.NullString(review.Text), review.UserID, review.MovieID).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperrors.Wrapf(apperrors.ErrNotFound, "movie %s", review.MovieID)
		}
		return apperrors.Wrapf(err, "db error")
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (*Review, error) {
	query :=
		`SELECT id, movie_id, user_id, score, review, created_at FROM reviews
		 WHERE id = $1`

	var (
		rv   Review
		text sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.MovieID, &rv.UserID, &rv.Score, &text, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrapf(err, "db error")
	}
	rv.Text = text.String
	return &rv, nil
}

func (r *PostgresRepo) ListForMovie(ctx context.Context, movieID string) ([]UserReview, error) {
	query :=
		`SELECT r.id, r.user_id, u.email, r.score, r.review FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.movie_id = $1
		 ORDER BY r.created_at, r.id`

	rows, err := r.db.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "db error")
	}
	defer rows.Close()

	var list []UserReview
	for rows.Next() {
		var (
			ur   UserReview
			text sql.NullString
		)
		if err := rows.Scan(&ur.ID, &ur.UserID, &ur.Email, &ur.Score, &text); err != nil {
			return nil, apperrors.Wrapf(err, "db scan error")
		}
		ur.Text = text.String
		list = append(list, ur)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrapf(err, "db rows error")
	}
	return list, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
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
