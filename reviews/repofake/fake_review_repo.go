package fakereviewrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/movies"
	"github.com/jrsteele09/go-movie-reviews/reviews"
	"github.com/jrsteele09/go-movie-reviews/users"
)

var _ reviews.ReviewRepo = (*FakeReviewRepo)(nil)

// FakeReviewRepo keeps reviews in memory. It resolves movies and authors
// through the other repos the way the database does with foreign keys and
// joins; reviews of a deleted movie or user are dropped from listings.
type FakeReviewRepo struct {
	reviews map[string]reviews.Review
	movies  movies.MovieRepo
	users   users.UserRepo
	lock    sync.RWMutex
	nowFunc func() time.Time
}

func NewFakeReviewRepo(movieRepo movies.MovieRepo, userRepo users.UserRepo) *FakeReviewRepo {
	return &FakeReviewRepo{
		reviews: make(map[string]reviews.Review),
		movies:  movieRepo,
		users:   userRepo,
		nowFunc: time.Now,
	}
}

func (r *FakeReviewRepo) Create(ctx context.Context, review *reviews.Review) error {
	if _, err := r.movies.Get(ctx, review.MovieID); err != nil {
		return apperrors.Wrapf(err, "movie %s", review.MovieID)
	}
	if _, err := r.users.GetByID(ctx, review.UserID); err != nil {
		return apperrors.Wrapf(err, "user %s", review.UserID)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	review.ID = uuid.New().String()
	review.CreatedAt = r.nowFunc().UTC()
	r.reviews[review.ID] = *review
	return nil
}

func (r *FakeReviewRepo) Get(_ context.Context, id string) (*reviews.Review, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	rv, ok := r.reviews[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rv, nil
}

func (r *FakeReviewRepo) ListForMovie(ctx context.Context, movieID string) ([]reviews.UserReview, error) {
	r.lock.RLock()
	matching := make([]reviews.Review, 0)
	for _, rv := range r.reviews {
		if rv.MovieID == movieID {
			matching = append(matching, rv)
		}
	}
	r.lock.RUnlock()

	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].CreatedAt.Before(matching[j].CreatedAt)
		}
		return matching[i].ID < matching[j].ID
	})

	list := make([]reviews.UserReview, 0, len(matching))
	for _, rv := range matching {
		author, err := r.users.GetByID(ctx, rv.UserID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		list = append(list, reviews.UserReview{
			ID:     rv.ID,
			UserID: rv.UserID,
			Email:  author.Email,
			Score:  rv.Score,
			Text:   rv.Text,
		})
	}
	return list, nil
}

func (r *FakeReviewRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}
