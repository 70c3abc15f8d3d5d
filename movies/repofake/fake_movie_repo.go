package fakemovierepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/movies"
)

var _ movies.MovieRepo = (*FakeMovieRepo)(nil)

type FakeMovieRepo struct {
	movies  map[string]movies.Movie
	lock    sync.RWMutex
	nowFunc func() time.Time
}

type Option func(*FakeMovieRepo)

// WithNowTime sets the clock (primarily for testing)
func WithNowTime(now func() time.Time) Option {
	return func(r *FakeMovieRepo) {
		r.nowFunc = now
	}
}

func NewFakeMovieRepo(options ...Option) *FakeMovieRepo {
	r := &FakeMovieRepo{
		movies:  make(map[string]movies.Movie),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *FakeMovieRepo) List(_ context.Context) ([]movies.Movie, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]movies.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *FakeMovieRepo) Get(_ context.Context, id string) (*movies.Movie, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (r *FakeMovieRepo) Create(_ context.Context, movie *movies.Movie) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := r.nowFunc().UTC()
	movie.ID = uuid.New().String()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	r.movies[movie.ID] = *movie
	return nil
}

func (r *FakeMovieRepo) Update(_ context.Context, movie *movies.Movie) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.movies[movie.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	movie.CreatedAt = existing.CreatedAt
	movie.UpdatedAt = r.nowFunc().UTC()
	r.movies[movie.ID] = *movie
	return nil
}

func (r *FakeMovieRepo) Delete(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.movies[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.movies, id)
	return nil
}
