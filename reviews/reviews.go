// Package reviews holds the per-user movie reviews.
package reviews

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
)

const (
	MinScore = 1
	MaxScore = 10
)

type Review struct {
	ID        string    `json:"id,omitempty"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	Text      string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// UserReview is a review joined with its author's email for display.
type UserReview struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Score  int    `json:"score"`
	Text   string `json:"review,omitempty"`
}

func (r *Review) Normalize() error {
	r.Text = strings.TrimSpace(r.Text)
	if r.MovieID == "" || r.UserID == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "review needs a movie and an author")
	}
	if r.Score < MinScore || r.Score > MaxScore {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "score %d outside %d..%d", r.Score, MinScore, MaxScore)
	}
	return nil
}

// ReviewRepo stores reviews. Create returns errors.ErrNotFound when the movie
// or author does not exist; Get and Delete of an unknown id return
// errors.ErrNotFound.
type ReviewRepo interface {
	Create(ctx context.Context, review *Review) error
	Get(ctx context.Context, id string) (*Review, error)
	ListForMovie(ctx context.Context, movieID string) ([]UserReview, error)
	Delete(ctx context.Context, id string) error
}
