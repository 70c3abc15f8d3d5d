// Package movies holds the movie catalogue.
package movies

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
)

type Movie struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Director  string    `json:"director"`
	Synopsis  string    `json:"synopsis,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Normalize trims the text fields and checks the required ones are present.
func (m *Movie) Normalize() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Director = strings.TrimSpace(m.Director)
	m.Synopsis = strings.TrimSpace(m.Synopsis)
	if m.Name == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "movie name is required")
	}
	if m.Director == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "movie director is required")
	}
	return nil
}

// MovieRepo stores movies. Get, Update and Delete of an unknown id return
// errors.ErrNotFound. List is ordered by name.
type MovieRepo interface {
	List(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id string) error
}
